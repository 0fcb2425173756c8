package repository

import (
	"context"
	"time"

	"casa/internal/domains/booking/model"
	gRepo "casa/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, bool, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	GetAllByProperty(ctx context.Context, propertyID string) ([]model.Booking, error)
	GetAllByGuest(ctx context.Context, guestID string) ([]model.Booking, error)
	GetAllByDateRange(ctx context.Context, start, end time.Time) ([]model.Booking, error)
	Update(ctx context.Context, booking model.Booking) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	store *gRepo.Store[model.Booking]
}

func New() Booking {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Booking](),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, booking model.Booking) error {
	r.store.Insert(booking.ID, booking)

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Booking, bool, error) {
	booking, ok := r.store.Get(id)

	return booking, ok, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Booking, error) {
	return r.store.All(), nil
}

func (r *repositoryImpl) GetAllByProperty(_ context.Context, propertyID string) ([]model.Booking, error) {
	return r.store.Filter(func(b model.Booking) bool {
		return b.PropertyID == propertyID
	}), nil
}

func (r *repositoryImpl) GetAllByGuest(_ context.Context, guestID string) ([]model.Booking, error) {
	return r.store.Filter(func(b model.Booking) bool {
		return b.GuestID == guestID
	}), nil
}

func (r *repositoryImpl) GetAllByDateRange(_ context.Context, start, end time.Time) ([]model.Booking, error) {
	return r.store.Filter(func(b model.Booking) bool {
		return b.OverlapsRange(start, end)
	}), nil
}

func (r *repositoryImpl) Update(_ context.Context, booking model.Booking) (bool, error) {
	return r.store.Replace(booking.ID, booking), nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}
