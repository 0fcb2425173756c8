package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"casa/infras/otel/mocks"
	"casa/internal/domains/guest/model/dto"
	"casa/internal/domains/guest/repository"
	"casa/internal/domains/guest/service"
)

func TestGuestService_Create(t *testing.T) {
	svc := service.New(repository.New(), mocks.NewOtel())

	res, err := svc.Create(context.Background(), dto.CreateGuestRequest{
		Name:     "Maria",
		LastName: "Silva",
		Email:    "maria@example.com",
		Phone:    "+55 (11) 91234-5678",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Maria", res.Name)
	assert.Equal(t, "maria@example.com", res.Email)
	assert.NotEmpty(t, res.CreatedAt)
}

func TestGuestService_GetByEmail(t *testing.T) {
	svc := service.New(repository.New(), mocks.NewOtel())

	created, err := svc.Create(context.Background(), dto.CreateGuestRequest{
		Name:     "Maria",
		LastName: "Silva",
		Email:    "maria@example.com",
		Phone:    "+5511912345678",
	})
	assert.NoError(t, err)

	t.Run("known email resolves the guest", func(t *testing.T) {
		res, err := svc.GetByEmail(context.Background(), "maria@example.com")

		assert.NoError(t, err)
		assert.Equal(t, created.ID, res.ID)
	})

	t.Run("unknown email returns not found", func(t *testing.T) {
		_, err := svc.GetByEmail(context.Background(), "nobody@example.com")

		assert.Error(t, err)
	})
}

func TestGuestService_Update(t *testing.T) {
	svc := service.New(repository.New(), mocks.NewOtel())

	created, err := svc.Create(context.Background(), dto.CreateGuestRequest{
		Name:     "Maria",
		LastName: "Silva",
		Email:    "maria@example.com",
		Phone:    "+5511912345678",
	})
	assert.NoError(t, err)

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		phone := "+5511987650000"

		res, err := svc.Update(context.Background(), dto.UpdateGuestRequest{Phone: &phone}, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, "+5511987650000", res.Phone)
		assert.Equal(t, created.Name, res.Name)
		assert.Equal(t, created.Email, res.Email)
		assert.Equal(t, created.CreatedAt, res.CreatedAt)
	})

	t.Run("unknown guest returns not found", func(t *testing.T) {
		_, err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "missing")

		assert.Error(t, err)
	})
}

func TestGuestService_Delete(t *testing.T) {
	svc := service.New(repository.New(), mocks.NewOtel())

	created, err := svc.Create(context.Background(), dto.CreateGuestRequest{
		Name:     "Maria",
		LastName: "Silva",
		Email:    "maria@example.com",
		Phone:    "+5511912345678",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Error(t, svc.Delete(context.Background(), created.ID))

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, res.TotalData)
}
