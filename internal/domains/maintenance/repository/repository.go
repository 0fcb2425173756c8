package repository

import (
	"context"

	"casa/internal/domains/maintenance/model"
	gRepo "casa/shared/repository"
)

type Maintenance interface {
	Insert(ctx context.Context, task model.Task) error
	Get(ctx context.Context, id string) (model.Task, bool, error)
	GetAll(ctx context.Context) ([]model.Task, error)
	GetAllByProperty(ctx context.Context, propertyID string) ([]model.Task, error)
	Update(ctx context.Context, task model.Task) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	store *gRepo.Store[model.Task]
}

func New() Maintenance {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Task](),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, task model.Task) error {
	r.store.Insert(task.ID, task)

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Task, bool, error) {
	task, ok := r.store.Get(id)

	return task, ok, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Task, error) {
	return r.store.All(), nil
}

func (r *repositoryImpl) GetAllByProperty(_ context.Context, propertyID string) ([]model.Task, error) {
	return r.store.Filter(func(t model.Task) bool {
		return t.PropertyID == propertyID
	}), nil
}

func (r *repositoryImpl) Update(_ context.Context, task model.Task) (bool, error) {
	return r.store.Replace(task.ID, task), nil
}

func (r *repositoryImpl) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}
