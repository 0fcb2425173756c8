package service

import (
	"context"
	"fmt"

	"casa/infras/otel"
	"casa/internal/domains/maintenance/model/dto"
	"casa/internal/domains/maintenance/repository"
	propertyRepo "casa/internal/domains/property/repository"
	"casa/shared/constant"
	"casa/shared/failure"

	"github.com/rs/zerolog/log"
)

type Maintenance interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	GetAll(ctx context.Context) (dto.GetTasksResponse, error)
	GetAllByProperty(ctx context.Context, propertyID string) (dto.GetTasksResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (dto.TaskResponse, error)
}

type serviceImpl struct {
	repo         repository.Maintenance
	propertyRepo propertyRepo.Property
	otel         otel.Otel
}

func New(repo repository.Maintenance, propertyRepo propertyRepo.Property, otel otel.Otel) Maintenance {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
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

	task, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse maintenance task request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create maintenance task")

		return res, fmt.Errorf("failed to create maintenance task: %w", err)
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance tasks")

		return res, fmt.Errorf("failed to get maintenance tasks: %w", err)
	}

	res.FromModels(tasks)

	return res, nil
}

func (s *serviceImpl) GetAllByProperty(ctx context.Context, propertyID string) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	tasks, err := s.repo.GetAllByProperty(ctx, propertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance tasks by property")

		return res, fmt.Errorf("failed to get maintenance tasks by property: %w", err)
	}

	res.FromModels(tasks)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	task, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance task")

		return res, fmt.Errorf("failed to get maintenance task: %w", err)
	}

	if !found {
		return res, failure.NotFound("maintenance task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	task, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance task")

		return res, fmt.Errorf("failed to get maintenance task: %w", err)
	}

	if !found {
		log.Error().Msg("maintenance task not found")

		return res, failure.NotFound("maintenance task not found") // nolint:wrapcheck
	}

	if err = req.ApplyTo(&task); err != nil {
		log.Error().Err(err).Msg("failed to parse maintenance task update")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if _, err = s.repo.Update(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance task")

		return res, fmt.Errorf("failed to update maintenance task: %w", err)
	}

	res.FromModel(task)

	return res, nil
}
