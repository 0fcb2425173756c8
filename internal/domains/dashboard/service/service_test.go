package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"casa/config"
	"casa/infras/otel/mocks"
	bookingModel "casa/internal/domains/booking/model"
	bookingRepository "casa/internal/domains/booking/repository"
	"casa/internal/domains/dashboard/model/dto"
	"casa/internal/domains/dashboard/service"
	propertyModel "casa/internal/domains/property/model"
	propertyRepository "casa/internal/domains/property/repository"
	cacheMocks "casa/shared/cache/mocks"
	"casa/shared/timezone"
)

func TestDashboardService_Stats(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	t.Run("cache hit returns the cached aggregate untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		bookingRepo := bookingRepository.New()
		propertyRepo := propertyRepository.New()

		svc := service.New(bookingRepo, propertyRepo, cfg, mockCache, mocks.NewOtel())

		cached := dto.StatsResponse{
			TotalProperties: 3,
			OccupancyRate:   42.5,
			MonthlyRevenue:  1800,
			ActiveBookings:  2,
		}

		mockCache.EXPECT().
			Get(gomock.Any(), "dashboard:stats", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.StatsResponse) = cached

				return nil
			})

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("cache miss computes the aggregate from the stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		bookingRepo := bookingRepository.New()
		propertyRepo := propertyRepository.New()

		svc := service.New(bookingRepo, propertyRepo, cfg, mockCache, mocks.NewOtel())

		mockCache.EXPECT().
			Get(gomock.Any(), "dashboard:stats", gomock.Any()).
			Return(errors.New("cache miss"))

		// The refreshed aggregate is written back asynchronously.
		mockCache.EXPECT().
			Save(gomock.Any(), "dashboard:stats", gomock.Any(), cfg.Cache.TTL).
			Return(nil).
			AnyTimes()

		now := timezone.Now()

		err := propertyRepo.Insert(context.Background(), propertyModel.Property{
			ID: "prop-1", Name: "Beach House", DailyRate: "300.00", CreatedAt: now,
		})
		assert.NoError(t, err)

		// Confirmed stay of three nights entirely inside the window.
		err = bookingRepo.Insert(context.Background(), bookingModel.Booking{
			ID: "booking-1", PropertyID: "prop-1", GuestID: "guest-1",
			CheckIn: now, CheckOut: now.AddDate(0, 0, 3),
			TotalAmount: "900.00", Status: bookingModel.StatusConfirmed, CreatedAt: now,
		})
		assert.NoError(t, err)

		// Pending bookings never count toward any aggregate.
		err = bookingRepo.Insert(context.Background(), bookingModel.Booking{
			ID: "booking-2", PropertyID: "prop-1", GuestID: "guest-2",
			CheckIn: now, CheckOut: now.AddDate(0, 0, 5),
			TotalAmount: "1500.00", Status: bookingModel.StatusPending, CreatedAt: now,
		})
		assert.NoError(t, err)

		// Unparseable amount is skipped by the revenue sum only.
		err = bookingRepo.Insert(context.Background(), bookingModel.Booking{
			ID: "booking-3", PropertyID: "prop-1", GuestID: "guest-3",
			CheckIn: now, CheckOut: now,
			TotalAmount: "abc", Status: bookingModel.StatusConfirmed, CreatedAt: now,
		})
		assert.NoError(t, err)

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalProperties)
		assert.InDelta(t, 10.0, res.OccupancyRate, 0.01)
		assert.InDelta(t, 900.0, res.MonthlyRevenue, 0.001)
		assert.Equal(t, 1, res.ActiveBookings)
	})

	t.Run("no properties yields zero occupancy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		svc := service.New(bookingRepository.New(), propertyRepository.New(), cfg, mockCache, mocks.NewOtel())

		mockCache.EXPECT().
			Get(gomock.Any(), "dashboard:stats", gomock.Any()).
			Return(errors.New("cache miss"))
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, res.TotalProperties)
		assert.Zero(t, res.OccupancyRate)
		assert.Zero(t, res.MonthlyRevenue)
		assert.Zero(t, res.ActiveBookings)
	})

	t.Run("occupancy is capped at one hundred percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		bookingRepo := bookingRepository.New()
		propertyRepo := propertyRepository.New()

		svc := service.New(bookingRepo, propertyRepo, cfg, mockCache, mocks.NewOtel())

		mockCache.EXPECT().
			Get(gomock.Any(), "dashboard:stats", gomock.Any()).
			Return(errors.New("cache miss"))
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		now := timezone.Now()

		err := propertyRepo.Insert(context.Background(), propertyModel.Property{
			ID: "prop-1", Name: "Cabin", CreatedAt: now,
		})
		assert.NoError(t, err)

		// Sixty booked nights against a thirty-night window.
		err = bookingRepo.Insert(context.Background(), bookingModel.Booking{
			ID: "booking-1", PropertyID: "prop-1", GuestID: "guest-1",
			CheckIn: now.AddDate(0, 0, -10), CheckOut: now.AddDate(0, 0, 50),
			TotalAmount: "9000.00", Status: bookingModel.StatusConfirmed, CreatedAt: now,
		})
		assert.NoError(t, err)

		err = bookingRepo.Insert(context.Background(), bookingModel.Booking{
			ID: "booking-2", PropertyID: "prop-1", GuestID: "guest-2",
			CheckIn: now, CheckOut: now.AddDate(0, 0, 30),
			TotalAmount: "9000.00", Status: bookingModel.StatusConfirmed, CreatedAt: now,
		})
		assert.NoError(t, err)

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.InDelta(t, 100.0, res.OccupancyRate, 0.01)
	})
}
