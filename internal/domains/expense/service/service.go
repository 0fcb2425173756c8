package service

import (
	"context"
	"fmt"

	"casa/infras/otel"
	"casa/internal/domains/expense/model/dto"
	"casa/internal/domains/expense/repository"
	propertyRepo "casa/internal/domains/property/repository"
	"casa/shared/constant"
	"casa/shared/failure"

	"github.com/rs/zerolog/log"
)

type Expense interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (dto.ExpenseResponse, error)
	GetAll(ctx context.Context) (dto.GetExpensesResponse, error)
	GetAllByProperty(ctx context.Context, propertyID string) (dto.GetExpensesResponse, error)
	GetAllByDateRange(ctx context.Context, query dto.DateRangeQuery) (dto.GetExpensesResponse, error)
	Get(ctx context.Context, id string) (dto.ExpenseResponse, error)
}

type serviceImpl struct {
	repo         repository.Expense
	propertyRepo propertyRepo.Property
	otel         otel.Otel
}

func New(repo repository.Expense, propertyRepo propertyRepo.Property, otel otel.Otel) Expense {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateExpenseRequest) (res dto.ExpenseResponse, err error) {
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

	expense, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse expense request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, expense); err != nil {
		log.Error().Err(err).Msg("failed to create expense")

		return res, fmt.Errorf("failed to create expense: %w", err)
	}

	res.FromModel(expense)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetExpensesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses")

		return res, fmt.Errorf("failed to get expenses: %w", err)
	}

	res.FromModels(expenses)

	return res, nil
}

func (s *serviceImpl) GetAllByProperty(ctx context.Context, propertyID string) (res dto.GetExpensesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	expenses, err := s.repo.GetAllByProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses by property")

		return res, fmt.Errorf("failed to get expenses by property: %w", err)
	}

	res.FromModels(expenses)

	return res, nil
}

func (s *serviceImpl) GetAllByDateRange(ctx context.Context, query dto.DateRangeQuery) (res dto.GetExpensesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByDateRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	expenses, err := s.repo.GetAllByDateRange(ctx, query.Start, query.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses by date range")

		return res, fmt.Errorf("failed to get expenses by date range: %w", err)
	}

	res.FromModels(expenses)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ExpenseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	expense, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expense")

		return res, fmt.Errorf("failed to get expense: %w", err)
	}

	if !found {
		return res, failure.NotFound("expense not found") // nolint:wrapcheck
	}

	res.FromModel(expense)

	return res, nil
}
