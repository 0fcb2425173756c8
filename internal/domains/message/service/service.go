package service

import (
	"context"
	"fmt"

	"casa/infras/otel"
	bookingModel "casa/internal/domains/booking/model"
	bookingRepo "casa/internal/domains/booking/repository"
	guestModel "casa/internal/domains/guest/model"
	guestRepo "casa/internal/domains/guest/repository"
	"casa/internal/domains/message/model"
	"casa/internal/domains/message/model/dto"
	"casa/internal/domains/message/repository"
	"casa/shared/constant"
	"casa/shared/failure"

	"github.com/rs/zerolog/log"
)

type Message interface {
	Create(ctx context.Context, req dto.CreateMessageRequest) (dto.MessageResponse, error)
	GetAll(ctx context.Context) (dto.GetMessagesResponse, error)
	GetAllByBooking(ctx context.Context, bookingID string) (dto.GetMessagesResponse, error)
	GetAllByGuest(ctx context.Context, guestID string) (dto.GetMessagesResponse, error)
	GetAllByChannel(ctx context.Context, channel string) (dto.GetMessagesResponse, error)
	GetAllWhatsApp(ctx context.Context, phoneNumber string) (dto.GetMessagesResponse, error)
	Get(ctx context.Context, id string) (dto.MessageDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateMessageRequest, id string) (dto.MessageResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateStatusByExternalID(ctx context.Context, externalID, status string) error
}

type serviceImpl struct {
	repo        repository.Message
	guestRepo   guestRepo.Guest
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Message, guestRepo guestRepo.Guest, bookingRepo bookingRepo.Booking, otel otel.Otel) Message {
	return &serviceImpl{
		repo:        repo,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := req.ToModel()

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to create message")

		return res, fmt.Errorf("failed to create message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	return s.assemble(ctx, messages)
}

func (s *serviceImpl) GetAllByBooking(ctx context.Context, bookingID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err := s.repo.GetAllByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages by booking")

		return res, fmt.Errorf("failed to get messages by booking: %w", err)
	}

	return s.assemble(ctx, messages)
}

func (s *serviceImpl) GetAllByGuest(ctx context.Context, guestID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err := s.repo.GetAllByGuest(ctx, guestID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages by guest")

		return res, fmt.Errorf("failed to get messages by guest: %w", err)
	}

	return s.assemble(ctx, messages)
}

func (s *serviceImpl) GetAllByChannel(ctx context.Context, channel string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByChannel")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err := s.repo.GetAllByChannel(ctx, channel)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages by channel")

		return res, fmt.Errorf("failed to get messages by channel: %w", err)
	}

	return s.assemble(ctx, messages)
}

func (s *serviceImpl) GetAllWhatsApp(ctx context.Context, phoneNumber string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllWhatsApp")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages, err := s.repo.GetAllWhatsApp(ctx, phoneNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get whatsapp messages")

		return res, fmt.Errorf("failed to get whatsapp messages: %w", err)
	}

	return s.assemble(ctx, messages)
}

// assemble resolves the guest and booking of each message into the joined
// view. Unlike bookings, a message with an unresolved relation is kept and
// the relation stays nil.
func (s *serviceImpl) assemble(ctx context.Context, messages []model.Message) (res dto.GetMessagesResponse, err error) {
	res.Messages = make([]dto.MessageDetailResponse, len(messages))

	for i, message := range messages {
		guest, booking, err := s.resolveRelations(ctx, message)
		if err != nil {
			return res, err
		}

		res.Messages[i].FromModels(message, guest, booking)
	}

	res.TotalData = len(res.Messages)

	return res, nil
}

func (s *serviceImpl) resolveRelations(ctx context.Context, message model.Message) (*guestModel.Guest, *bookingModel.Booking, error) {
	var guest *guestModel.Guest

	if message.GuestID != constant.Empty {
		g, found, err := s.guestRepo.Get(ctx, message.GuestID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve message guest: %w", err)
		}

		if found {
			guest = &g
		}
	}

	var booking *bookingModel.Booking

	if message.BookingID != constant.Empty {
		b, found, err := s.bookingRepo.Get(ctx, message.BookingID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve message booking: %w", err)
		}

		if found {
			booking = &b
		}
	}

	return guest, booking, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MessageDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get message")

		return res, fmt.Errorf("failed to get message: %w", err)
	}

	if !found {
		return res, failure.NotFound("message not found") // nolint:wrapcheck
	}

	guest, booking, err := s.resolveRelations(ctx, message)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve message relations")

		return res, err
	}

	res.FromModels(message, guest, booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMessageRequest, id string) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get message")

		return res, fmt.Errorf("failed to get message: %w", err)
	}

	if !found {
		log.Error().Msg("message not found")

		return res, failure.NotFound("message not found") // nolint:wrapcheck
	}

	req.ApplyTo(&message)

	if _, err = s.repo.Update(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to update message")

		return res, fmt.Errorf("failed to update message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete message")

		return fmt.Errorf("failed to delete message: %w", err)
	}

	if !removed {
		log.Error().Msg("message not found")

		return failure.NotFound("message not found") // nolint:wrapcheck
	}

	return nil
}

// UpdateStatusByExternalID sets the delivery status of the message whose
// provider message id matches. Driven by provider status webhooks.
func (s *serviceImpl) UpdateStatusByExternalID(ctx context.Context, externalID, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatusByExternalID")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, found, err := s.repo.GetByExternalID(ctx, externalID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up message by external id")

		return fmt.Errorf("failed to look up message by external id: %w", err)
	}

	if !found {
		return failure.NotFound("message not found") // nolint:wrapcheck
	}

	message.WhatsAppStatus = status

	if _, err = s.repo.Update(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to update message status")

		return fmt.Errorf("failed to update message status: %w", err)
	}

	return nil
}
