package booking

import (
	"net/http"
	"time"

	"casa/infras/otel"
	"casa/internal/domains/booking/model/dto"
	"casa/internal/domains/booking/service"
	"casa/shared/constant"
	"casa/shared/failure"
	"casa/shared/timezone"
	"casa/shared/validator"
	"casa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamStart      = "start"
	queryParamEnd        = "end"
	queryParamPropertyID = "property_id"
	queryParamGuestID    = "guest_id"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a booking for an existing guest id, or supply a guest payload to resolve or create the guest by email.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves bookings as joined views, with optional filters.
// @Summary Get all bookings
// @Description Retrieve bookings with resolved guest and property, optionally filtered by date range, property or guest. Bookings whose relations no longer resolve are omitted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param start query string false "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Range end (RFC3339 or YYYY-MM-DD)"
// @Param property_id query string false "Filter by property"
// @Param guest_id query string false "Filter by guest"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := r.URL.Query()

	var (
		res dto.GetBookingsResponse
		err error
	)

	switch {
	case query.Get(queryParamStart) != constant.Empty || query.Get(queryParamEnd) != constant.Empty:
		var rangeQuery dto.DateRangeQuery

		rangeQuery, err = parseDateRange(query.Get(queryParamStart), query.Get(queryParamEnd))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse booking date range")

			response.WithError(w, err)

			return
		}

		res, err = handler.service.GetAllByDateRange(ctx, rangeQuery)
	case query.Get(queryParamPropertyID) != constant.Empty:
		res, err = handler.service.GetAllByProperty(ctx, query.Get(queryParamPropertyID))
	case query.Get(queryParamGuestID) != constant.Empty:
		res, err = handler.service.GetAllByGuest(ctx, query.Get(queryParamGuestID))
	default:
		res, err = handler.service.GetAll(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking with whichever relations still resolve. Orphaned bookings stay reachable here.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingDetailResponse "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Partially update an existing booking. Omitted fields keep their value.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Delete a booking outright.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// parseDateRange accepts RFC3339 or date-only values. Both bounds are
// required once either is supplied.
func parseDateRange(start, end string) (dto.DateRangeQuery, error) {
	if start == constant.Empty || end == constant.Empty {
		return dto.DateRangeQuery{}, failure.BadRequestFromString("start and end are both required for a date range query")
	}

	startTime, err := parseRangeValue(start)
	if err != nil {
		return dto.DateRangeQuery{}, failure.BadRequestFromString("invalid start date: " + start)
	}

	endTime, err := parseRangeValue(end)
	if err != nil {
		return dto.DateRangeQuery{}, failure.BadRequestFromString("invalid end date: " + end)
	}

	return dto.DateRangeQuery{Start: startTime, End: endTime}, nil
}

func parseRangeValue(value string) (time.Time, error) {
	parsed, err := timezone.Parse(constant.DateFormat, value)
	if err == nil {
		return parsed, nil
	}

	return timezone.Parse(constant.DateOnlyFormat, value)
}
