package message

import (
	"net/http"

	"casa/infras/otel"
	"casa/internal/domains/message/model/dto"
	"casa/internal/domains/message/service"
	"casa/shared/constant"
	"casa/shared/validator"
	"casa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamBookingID = "booking_id"
	queryParamGuestID   = "guest_id"
	queryParamChannel   = "channel"
)

type Handler struct {
	service service.Message
	otel    otel.Otel
}

func New(service service.Message, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMessage)
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Get("/whatsapp", handler.GetWhatsAppMessages)
		routerGroup.Get("/{id}", handler.GetMessageByID)
		routerGroup.Patch("/{id}", handler.UpdateMessage)
		routerGroup.Delete("/{id}", handler.DeleteMessage)
	})
}

// CreateMessage handles the creation of a new message.
// @Summary Create a new message
// @Description Record a message, optionally linked to a guest and a booking.
// @Tags Message
// @Accept json
// @Produce json
// @Param request body dto.CreateMessageRequest true "Create Message Request"
// @Success 201 {object} dto.MessageResponse "Message created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages [post]
func (handler *Handler) CreateMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMessage")
	defer scope.End()

	req := dto.CreateMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Message created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMessages retrieves messages as joined views, with optional filters.
// @Summary Get all messages
// @Description Retrieve messages with resolved guest and booking when they still exist, optionally filtered by booking, guest or channel.
// @Tags Message
// @Accept json
// @Produce json
// @Param booking_id query string false "Filter by booking"
// @Param guest_id query string false "Filter by guest"
// @Param channel query string false "Filter by channel"
// @Success 200 {object} dto.GetMessagesResponse "List of messages"
// @Failure 500 {object} response.Error
// @Router /v1/messages [get]
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	query := r.URL.Query()

	var (
		res dto.GetMessagesResponse
		err error
	)

	switch {
	case query.Get(queryParamBookingID) != constant.Empty:
		res, err = handler.service.GetAllByBooking(ctx, query.Get(queryParamBookingID))
	case query.Get(queryParamGuestID) != constant.Empty:
		res, err = handler.service.GetAllByGuest(ctx, query.Get(queryParamGuestID))
	case query.Get(queryParamChannel) != constant.Empty:
		res, err = handler.service.GetAllByChannel(ctx, query.Get(queryParamChannel))
	default:
		res, err = handler.service.GetAll(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetWhatsAppMessages retrieves WhatsApp-channel messages.
// @Summary Get WhatsApp messages
// @Description Retrieve channel=whatsapp messages, optionally filtered by a phone number matching either side of the conversation exactly.
// @Tags Message
// @Accept json
// @Produce json
// @Param phone query string false "Filter by exact from/to number"
// @Success 200 {object} dto.GetMessagesResponse "List of WhatsApp messages"
// @Failure 500 {object} response.Error
// @Router /v1/messages/whatsapp [get]
func (handler *Handler) GetWhatsAppMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWhatsAppMessages")
	defer scope.End()

	phone := r.URL.Query().Get(constant.RequestParamPhone)

	res, err := handler.service.GetAllWhatsApp(ctx, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get whatsapp messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("WhatsApp messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetMessageByID retrieves a message by its ID.
// @Summary Get a message by ID
// @Description Retrieve a message with whichever relations still resolve.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.MessageDetailResponse "Message details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id} [get]
func (handler *Handler) GetMessageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	message, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get message by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message retrieved successfully")

	response.WithJSON(w, http.StatusOK, message)
}

// UpdateMessage updates an existing message by its ID.
// @Summary Update a message by ID
// @Description Partially update a message, typically to flip its read flag or adjust its delivery status.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.UpdateMessageRequest true "Update Message Request"
// @Success 200 {object} dto.MessageResponse "Message updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id} [patch]
func (handler *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteMessage deletes a message by its ID.
// @Summary Delete a message by ID
// @Description Delete a message outright.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message "Message deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id} [delete]
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message deleted successfully")

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}
