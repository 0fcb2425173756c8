package repository

import (
	"context"
	"time"

	"casa/internal/domains/expense/model"
	gRepo "casa/shared/repository"
)

type Expense interface {
	Insert(ctx context.Context, expense model.Expense) error
	Get(ctx context.Context, id string) (model.Expense, bool, error)
	GetAll(ctx context.Context) ([]model.Expense, error)
	GetAllByProperty(ctx context.Context, propertyID string) ([]model.Expense, error)
	GetAllByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error)
}

type repositoryImpl struct {
	store *gRepo.Store[model.Expense]
}

func New() Expense {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Expense](),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, expense model.Expense) error {
	r.store.Insert(expense.ID, expense)

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Expense, bool, error) {
	expense, ok := r.store.Get(id)

	return expense, ok, nil
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Expense, error) {
	return r.store.All(), nil
}

func (r *repositoryImpl) GetAllByProperty(_ context.Context, propertyID string) ([]model.Expense, error) {
	return r.store.Filter(func(e model.Expense) bool {
		return e.PropertyID == propertyID
	}), nil
}

func (r *repositoryImpl) GetAllByDateRange(_ context.Context, start, end time.Time) ([]model.Expense, error) {
	return r.store.Filter(func(e model.Expense) bool {
		return e.InRange(start, end)
	}), nil
}
