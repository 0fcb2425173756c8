package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"casa/infras/otel/mocks"
	bookingModel "casa/internal/domains/booking/model"
	"casa/internal/domains/booking/model/dto"
	"casa/internal/domains/booking/repository"
	"casa/internal/domains/booking/service"
	guestModel "casa/internal/domains/guest/model"
	guestDto "casa/internal/domains/guest/model/dto"
	guestRepository "casa/internal/domains/guest/repository"
	propertyModel "casa/internal/domains/property/model"
	propertyRepository "casa/internal/domains/property/repository"
	"casa/shared/timezone"
)

func seedProperty(t *testing.T, repo propertyRepository.Property, id string) propertyModel.Property {
	t.Helper()

	property := propertyModel.Property{
		ID:        id,
		Name:      "Beach House",
		MaxGuests: 4,
		DailyRate: "250.00",
		CreatedAt: timezone.Now(),
	}

	err := repo.Insert(context.Background(), property)
	assert.NoError(t, err)

	return property
}

func seedGuest(t *testing.T, repo guestRepository.Guest, id, email string) guestModel.Guest {
	t.Helper()

	guest := guestModel.Guest{
		ID:        id,
		Name:      "Maria",
		LastName:  "Silva",
		Email:     email,
		Phone:     "+55 (11) 91234-5678",
		CreatedAt: timezone.Now(),
	}

	err := repo.Insert(context.Background(), guest)
	assert.NoError(t, err)

	return guest
}

func TestBookingService_Create(t *testing.T) {
	mockOtel := mocks.NewOtel()

	t.Run("existing guest id defaults to pending", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")
		seedGuest(t, guestRepo, "guest-1", "maria@example.com")

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID:  "prop-1",
			GuestID:     "guest-1",
			CheckIn:     "2024-01-10T00:00:00Z",
			CheckOut:    "2024-01-15T00:00:00Z",
			TotalAmount: "1250.00",
		})

		assert.NoError(t, err)
		assert.Equal(t, bookingModel.StatusPending, res.Status)
		assert.Equal(t, "guest-1", res.GuestID)
		assert.Equal(t, 1, res.NumberOfGuests)
	})

	t.Run("inline guest payload creates guest and defaults to confirmed", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID: "prop-1",
			Guest: &guestDto.CreateGuestRequest{
				Name:     "Joao",
				LastName: "Santos",
				Email:    "joao@example.com",
				Phone:    "+5511987654321",
			},
			CheckIn:     "2024-02-01T00:00:00Z",
			CheckOut:    "2024-02-05T00:00:00Z",
			TotalAmount: "1000.00",
		})

		assert.NoError(t, err)
		assert.Equal(t, bookingModel.StatusConfirmed, res.Status)

		created, found, err := guestRepo.GetByEmail(context.Background(), "joao@example.com")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, created.ID, res.GuestID)
	})

	t.Run("inline guest payload reuses guest matched by email", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")
		existing := seedGuest(t, guestRepo, "guest-7", "maria@example.com")

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID: "prop-1",
			Guest: &guestDto.CreateGuestRequest{
				Name:     "Maria",
				LastName: "Silva",
				Email:    "maria@example.com",
				Phone:    "+5511912345678",
			},
			CheckIn:     "2024-02-01T00:00:00Z",
			CheckOut:    "2024-02-05T00:00:00Z",
			TotalAmount: "1000.00",
		})

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, res.GuestID)
		assert.Equal(t, bookingModel.StatusConfirmed, res.Status)

		all, err := guestRepo.GetAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("unknown property is rejected", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID:  "missing",
			GuestID:     "guest-1",
			CheckIn:     "2024-01-10T00:00:00Z",
			CheckOut:    "2024-01-15T00:00:00Z",
			TotalAmount: "1250.00",
		})

		assert.Error(t, err)
	})

	t.Run("unknown guest id is rejected", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID:  "prop-1",
			GuestID:     "missing",
			CheckIn:     "2024-01-10T00:00:00Z",
			CheckOut:    "2024-01-15T00:00:00Z",
			TotalAmount: "1250.00",
		})

		assert.Error(t, err)
	})

	t.Run("missing guest id and payload is rejected", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID:  "prop-1",
			CheckIn:     "2024-01-10T00:00:00Z",
			CheckOut:    "2024-01-15T00:00:00Z",
			TotalAmount: "1250.00",
		})

		assert.Error(t, err)
	})

	t.Run("unparseable date is rejected", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")
		seedGuest(t, guestRepo, "guest-1", "maria@example.com")

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID:  "prop-1",
			GuestID:     "guest-1",
			CheckIn:     "not-a-date",
			CheckOut:    "2024-01-15T00:00:00Z",
			TotalAmount: "1250.00",
		})

		assert.Error(t, err)
	})

	t.Run("explicit status overrides the default", func(t *testing.T) {
		bookingRepo := repository.New()
		guestRepo := guestRepository.New()
		propertyRepo := propertyRepository.New()
		svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

		seedProperty(t, propertyRepo, "prop-1")
		seedGuest(t, guestRepo, "guest-1", "maria@example.com")

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			PropertyID:  "prop-1",
			GuestID:     "guest-1",
			CheckIn:     "2024-01-10T00:00:00Z",
			CheckOut:    "2024-01-15T00:00:00Z",
			TotalAmount: "1250.00",
			Status:      bookingModel.StatusCompleted,
		})

		assert.NoError(t, err)
		assert.Equal(t, bookingModel.StatusCompleted, res.Status)
	})
}

func TestBookingService_GetAll_OmitsOrphanedBookings(t *testing.T) {
	mockOtel := mocks.NewOtel()

	bookingRepo := repository.New()
	guestRepo := guestRepository.New()
	propertyRepo := propertyRepository.New()
	svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

	seedProperty(t, propertyRepo, "prop-1")
	seedGuest(t, guestRepo, "guest-1", "maria@example.com")
	seedGuest(t, guestRepo, "guest-2", "joao@example.com")

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		GuestID:     "guest-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		GuestID:     "guest-2",
		CheckIn:     "2024-02-01T00:00:00Z",
		CheckOut:    "2024-02-03T00:00:00Z",
		TotalAmount: "500.00",
	})
	assert.NoError(t, err)

	removed, err := guestRepo.Delete(context.Background(), "guest-1")
	assert.NoError(t, err)
	assert.True(t, removed)

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, "guest-2", res.Bookings[0].GuestID)
}

func TestBookingService_Get_KeepsOrphanedBookingReachable(t *testing.T) {
	mockOtel := mocks.NewOtel()

	bookingRepo := repository.New()
	guestRepo := guestRepository.New()
	propertyRepo := propertyRepository.New()
	svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

	seedProperty(t, propertyRepo, "prop-1")
	seedGuest(t, guestRepo, "guest-1", "maria@example.com")

	created, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		GuestID:     "guest-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	})
	assert.NoError(t, err)

	_, err = guestRepo.Delete(context.Background(), "guest-1")
	assert.NoError(t, err)

	res, err := svc.Get(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, res.ID)
	assert.Nil(t, res.Guest)
	assert.NotNil(t, res.Property)
}

func TestBookingService_GetAllByDateRange(t *testing.T) {
	mockOtel := mocks.NewOtel()

	bookingRepo := repository.New()
	guestRepo := guestRepository.New()
	propertyRepo := propertyRepository.New()
	svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

	seedProperty(t, propertyRepo, "prop-1")
	seedGuest(t, guestRepo, "guest-1", "maria@example.com")

	created, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		GuestID:     "guest-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	})
	assert.NoError(t, err)

	date := func(value string) time.Time {
		parsed, parseErr := time.Parse(time.RFC3339, value)
		assert.NoError(t, parseErr)

		return parsed
	}

	t.Run("partial overlap is included", func(t *testing.T) {
		res, err := svc.GetAllByDateRange(context.Background(), dto.DateRangeQuery{
			Start: date("2024-01-12T00:00:00Z"),
			End:   date("2024-01-20T00:00:00Z"),
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, created.ID, res.Bookings[0].ID)
	})

	t.Run("disjoint range is excluded", func(t *testing.T) {
		res, err := svc.GetAllByDateRange(context.Background(), dto.DateRangeQuery{
			Start: date("2024-01-20T00:00:00Z"),
			End:   date("2024-01-25T00:00:00Z"),
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
		assert.Empty(t, res.Bookings)
	})

	t.Run("boundary touch on checkout day is included", func(t *testing.T) {
		res, err := svc.GetAllByDateRange(context.Background(), dto.DateRangeQuery{
			Start: date("2024-01-15T00:00:00Z"),
			End:   date("2024-01-18T00:00:00Z"),
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})
}

func TestBookingService_Update(t *testing.T) {
	mockOtel := mocks.NewOtel()

	bookingRepo := repository.New()
	guestRepo := guestRepository.New()
	propertyRepo := propertyRepository.New()
	svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

	seedProperty(t, propertyRepo, "prop-1")
	seedGuest(t, guestRepo, "guest-1", "maria@example.com")

	created, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		GuestID:     "guest-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	})
	assert.NoError(t, err)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		status := bookingModel.StatusCancelled

		res, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: &status}, created.ID)

		assert.NoError(t, err)
		assert.Equal(t, bookingModel.StatusCancelled, res.Status)
		assert.Equal(t, created.CheckIn, res.CheckIn)
		assert.Equal(t, created.TotalAmount, res.TotalAmount)
		assert.Equal(t, created.CreatedAt, res.CreatedAt)
	})

	t.Run("unknown booking returns not found", func(t *testing.T) {
		status := bookingModel.StatusConfirmed

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: &status}, "missing")

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	mockOtel := mocks.NewOtel()

	bookingRepo := repository.New()
	guestRepo := guestRepository.New()
	propertyRepo := propertyRepository.New()
	svc := service.New(bookingRepo, guestRepo, propertyRepo, mockOtel)

	seedProperty(t, propertyRepo, "prop-1")
	seedGuest(t, guestRepo, "guest-1", "maria@example.com")

	created, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		GuestID:     "guest-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Error(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.Error(t, err)
}
