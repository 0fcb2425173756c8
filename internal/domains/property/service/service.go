package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"casa/infras/otel"
	"casa/infras/s3"
	"casa/internal/domains/property/model/dto"
	"casa/internal/domains/property/repository"
	"casa/shared/constant"
	"casa/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	photoDirectory = "properties"
)

type Property interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) (dto.PropertyResponse, error)
	GetAll(ctx context.Context) (dto.GetPropertiesResponse, error)
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (dto.PropertyResponse, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (dto.PropertyResponse, error)
	DeletePhoto(ctx context.Context, id, url string) (dto.PropertyResponse, error)
}

type serviceImpl struct {
	repo repository.Property
	s3   s3.S3
	otel otel.Otel
}

func New(repo repository.Property, s3 s3.S3, otel otel.Otel) Property {
	return &serviceImpl{
		repo: repo,
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	property := req.ToModel()

	if err = s.repo.Insert(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to create property")

		return res, fmt.Errorf("failed to create property: %w", err)
	}

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	properties, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(properties)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if !found {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if !found {
		log.Error().Msg("property not found")

		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	req.ApplyTo(&property)

	if _, err = s.repo.Update(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return res, fmt.Errorf("failed to update property: %w", err)
	}

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	if !removed {
		log.Error().Msg("property not found")

		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if !found {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(fileHeader.Filename)

	url, err := s.s3.UploadFile(ctx, path.Join(photoDirectory, id), file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload property photo")

		return res, fmt.Errorf("failed to upload property photo: %w", err)
	}

	property.Photos = append(property.Photos, url)

	if _, err = s.repo.Update(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to update property photos")

		return res, fmt.Errorf("failed to update property photos: %w", err)
	}

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) DeletePhoto(ctx context.Context, id, url string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if !found {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	photos := make([]string, 0, len(property.Photos))
	removed := false

	for _, photo := range property.Photos {
		if photo == url {
			removed = true
			continue
		}

		photos = append(photos, photo)
	}

	if !removed {
		return res, failure.NotFound("photo not found") // nolint:wrapcheck
	}

	property.Photos = photos

	if _, err = s.repo.Update(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to update property photos")

		return res, fmt.Errorf("failed to update property photos: %w", err)
	}

	// Removing the object from storage is best effort; the record no
	// longer references it either way.
	if objectName := s.s3.GetObjectNameFromURL(url); objectName != constant.Empty {
		if err := s.s3.DeleteFile(ctx, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete photo from storage")
		}
	}

	res.FromModel(property)

	return res, nil
}
