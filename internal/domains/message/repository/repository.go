package repository

import (
	"context"

	"casa/internal/domains/message/model"
	gRepo "casa/shared/repository"
)

type Message interface {
	Insert(ctx context.Context, message model.Message) error
	Get(ctx context.Context, id string) (model.Message, bool, error)
	GetAll(ctx context.Context) ([]model.Message, error)
	GetAllByBooking(ctx context.Context, bookingID string) ([]model.Message, error)
	GetAllByGuest(ctx context.Context, guestID string) ([]model.Message, error)
	GetAllByChannel(ctx context.Context, channel string) ([]model.Message, error)
	GetAllWhatsApp(ctx context.Context, phoneNumber string) ([]model.Message, error)
	GetByExternalID(ctx context.Context, externalID string) (model.Message, bool, error)
	Update(ctx context.Context, message model.Message) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	store *gRepo.Store[model.Message]
}

func New() Message {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Message](),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, message model.Message) error {
	r.store.Insert(message.ID, message)

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Message, bool, error) {
	message, ok := r.store.Get(id)

	return message, ok, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Message, error) {
	return r.store.All(), nil
}

func (r *repositoryImpl) GetAllByBooking(_ context.Context, bookingID string) ([]model.Message, error) {
	return r.store.Filter(func(m model.Message) bool {
		return m.BookingID == bookingID
	}), nil
}

func (r *repositoryImpl) GetAllByGuest(_ context.Context, guestID string) ([]model.Message, error) {
	return r.store.Filter(func(m model.Message) bool {
		return m.GuestID == guestID
	}), nil
}

func (r *repositoryImpl) GetAllByChannel(_ context.Context, channel string) ([]model.Message, error) {
	return r.store.Filter(func(m model.Message) bool {
		return m.Channel == channel
	}), nil
}

// GetAllWhatsApp returns channel=whatsapp messages, optionally filtered by a
// phone number matching either side of the conversation. The comparison is
// exact on the stored strings, no normalization is applied here.
func (r *repositoryImpl) GetAllWhatsApp(_ context.Context, phoneNumber string) ([]model.Message, error) {
	return r.store.Filter(func(m model.Message) bool {
		if m.Channel != model.ChannelWhatsApp {
			return false
		}

		if phoneNumber == "" {
			return true
		}

		return m.FromNumber == phoneNumber || m.ToNumber == phoneNumber
	}), nil
}

func (r *repositoryImpl) GetByExternalID(_ context.Context, externalID string) (model.Message, bool, error) {
	message, ok := r.store.Find(func(m model.Message) bool {
		return m.WhatsAppMessageID == externalID
	})

	return message, ok, nil
}

func (r *repositoryImpl) Update(_ context.Context, message model.Message) (bool, error) {
	return r.store.Replace(message.ID, message), nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}
