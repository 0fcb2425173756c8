package service

import (
	"context"
	"fmt"

	"casa/infras/otel"
	"casa/internal/domains/booking/model"
	"casa/internal/domains/booking/model/dto"
	"casa/internal/domains/booking/repository"
	guestModel "casa/internal/domains/guest/model"
	guestRepo "casa/internal/domains/guest/repository"
	propertyModel "casa/internal/domains/property/model"
	propertyRepo "casa/internal/domains/property/repository"
	"casa/shared/constant"
	"casa/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	GetAllByProperty(ctx context.Context, propertyID string) (dto.GetBookingsResponse, error)
	GetAllByGuest(ctx context.Context, guestID string) (dto.GetBookingsResponse, error)
	GetAllByDateRange(ctx context.Context, query dto.DateRangeQuery) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	guestRepo    guestRepo.Guest
	propertyRepo propertyRepo.Property
	otel         otel.Otel
}

func New(repo repository.Booking, guestRepo guestRepo.Guest, propertyRepo propertyRepo.Property, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		guestRepo:    guestRepo,
		propertyRepo: propertyRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, propertyExists, err := s.propertyRepo.Get(ctx, req.PropertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return res, fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !propertyExists {
		return res, failure.BadRequestFromString("property does not exist") // nolint:wrapcheck
	}

	guestID, defaultStatus, err := s.resolveGuest(ctx, req)
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(guestID, defaultStatus)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// resolveGuest performs the explicit two-step orchestration for booking
// creation: use the supplied guest id, or look the guest up by email and
// create one when absent. Bookings created alongside a fresh guest default
// to confirmed; bookings for known guests default to pending.
func (s *serviceImpl) resolveGuest(ctx context.Context, req dto.CreateBookingRequest) (guestID, defaultStatus string, err error) {
	if req.GuestID != constant.Empty {
		_, found, err := s.guestRepo.Get(ctx, req.GuestID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check if guest exists")

			return constant.Empty, constant.Empty, fmt.Errorf("failed to check if guest exists: %w", err)
		}

		if !found {
			return constant.Empty, constant.Empty, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
		}

		return req.GuestID, model.StatusPending, nil
	}

	if req.Guest == nil {
		return constant.Empty, constant.Empty, failure.BadRequestFromString("guest_id or guest payload is required") // nolint:wrapcheck
	}

	existing, found, err := s.guestRepo.GetByEmail(ctx, req.Guest.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up guest by email")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to look up guest by email: %w", err)
	}

	if found {
		return existing.ID, model.StatusConfirmed, nil
	}

	guest := req.Guest.ToModel()

	if err := s.guestRepo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest for booking")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to create guest for booking: %w", err)
	}

	return guest.ID, model.StatusConfirmed, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	return s.assemble(ctx, bookings)
}

func (s *serviceImpl) GetAllByProperty(ctx context.Context, propertyID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAllByProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by property")

		return res, fmt.Errorf("failed to get bookings by property: %w", err)
	}

	return s.assemble(ctx, bookings)
}

func (s *serviceImpl) GetAllByGuest(ctx context.Context, guestID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAllByGuest(ctx, guestID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by guest")

		return res, fmt.Errorf("failed to get bookings by guest: %w", err)
	}

	return s.assemble(ctx, bookings)
}

func (s *serviceImpl) GetAllByDateRange(ctx context.Context, query dto.DateRangeQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByDateRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAllByDateRange(ctx, query.Start, query.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by date range")

		return res, fmt.Errorf("failed to get bookings by date range: %w", err)
	}

	return s.assemble(ctx, bookings)
}

// assemble resolves the guest and property of each booking into the joined
// view. Bookings whose guest or property no longer resolves are omitted.
func (s *serviceImpl) assemble(ctx context.Context, bookings []model.Booking) (res dto.GetBookingsResponse, err error) {
	res.Bookings = make([]dto.BookingDetailResponse, 0, len(bookings))

	for _, booking := range bookings {
		guest, property, err := s.resolveRelations(ctx, booking)
		if err != nil {
			return res, err
		}

		if guest == nil || property == nil {
			log.Warn().
				Str("booking_id", booking.ID).
				Msg("booking omitted from listing, guest or property no longer resolves")

			continue
		}

		detail := dto.BookingDetailResponse{}
		detail.FromModels(booking, guest, property)

		res.Bookings = append(res.Bookings, detail)
	}

	res.TotalData = len(res.Bookings)

	return res, nil
}

func (s *serviceImpl) resolveRelations(ctx context.Context, booking model.Booking) (*guestModel.Guest, *propertyModel.Property, error) {
	var guest *guestModel.Guest

	g, found, err := s.guestRepo.Get(ctx, booking.GuestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve booking guest: %w", err)
	}

	if found {
		guest = &g
	}

	var property *propertyModel.Property

	p, found, err := s.propertyRepo.Get(ctx, booking.PropertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve booking property: %w", err)
	}

	if found {
		property = &p
	}

	return guest, property, nil
}

// Get returns the booking by id with whichever relations still resolve.
// Unlike the list operations it never omits the booking itself, so records
// orphaned by a guest or property deletion stay reachable.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	guest, property, err := s.resolveRelations(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve booking relations")

		return res, err
	}

	res.FromModels(booking, guest, property)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !found {
		log.Error().Msg("booking not found")

		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = req.ApplyTo(&booking); err != nil {
		log.Error().Err(err).Msg("failed to parse booking update")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if _, err = s.repo.Update(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if !removed {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}
