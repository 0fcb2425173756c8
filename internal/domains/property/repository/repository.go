package repository

import (
	"context"

	"casa/internal/domains/property/model"
	gRepo "casa/shared/repository"
)

type Property interface {
	Insert(ctx context.Context, property model.Property) error
	Get(ctx context.Context, id string) (model.Property, bool, error)
	GetAll(ctx context.Context) ([]model.Property, error)
	Update(ctx context.Context, property model.Property) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	store *gRepo.Store[model.Property]
}

func New() Property {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Property](),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, property model.Property) error {
	r.store.Insert(property.ID, property)

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Property, bool, error) {
	property, ok := r.store.Get(id)

	return property, ok, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Property, error) {
	return r.store.All(), nil
}

func (r *repositoryImpl) Update(_ context.Context, property model.Property) (bool, error) {
	return r.store.Replace(property.ID, property), nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}
