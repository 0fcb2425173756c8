package repository

import (
	"context"

	"casa/internal/domains/guest/model"
	"casa/shared/phone"
	gRepo "casa/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, guest model.Guest) error
	Get(ctx context.Context, id string) (model.Guest, bool, error)
	GetAll(ctx context.Context) ([]model.Guest, error)
	GetByEmail(ctx context.Context, email string) (model.Guest, bool, error)
	GetByPhone(ctx context.Context, canonical string) (model.Guest, bool, error)
	Update(ctx context.Context, guest model.Guest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	store *gRepo.Store[model.Guest]
}

func New() Guest {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Guest](),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, guest model.Guest) error {
	r.store.Insert(guest.ID, guest)

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Guest, bool, error) {
	guest, ok := r.store.Get(id)

	return guest, ok, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Guest, error) {
	return r.store.All(), nil
}

// GetByEmail returns the first guest with an exactly matching email.
// Uniqueness is advisory only; the store never enforces it.
func (r *repositoryImpl) GetByEmail(_ context.Context, email string) (model.Guest, bool, error) {
	guest, ok := r.store.Find(func(g model.Guest) bool {
		return g.Email == email
	})

	return guest, ok, nil
}

// GetByPhone returns the first guest whose stored phone matches the given
// canonical form under the same normalization.
func (r *repositoryImpl) GetByPhone(_ context.Context, canonical string) (model.Guest, bool, error) {
	guest, ok := r.store.Find(func(g model.Guest) bool {
		return phone.Normalize(g.Phone) == canonical
	})

	return guest, ok, nil
}

func (r *repositoryImpl) Update(_ context.Context, guest model.Guest) (bool, error) {
	return r.store.Replace(guest.ID, guest), nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}
