package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"casa/config"
	"casa/infras/otel"
	bookingModel "casa/internal/domains/booking/model"
	bookingRepo "casa/internal/domains/booking/repository"
	"casa/internal/domains/dashboard/model/dto"
	propertyRepo "casa/internal/domains/property/repository"
	"casa/shared"
	"casa/shared/cache"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboardStats = "dashboard"

	occupancyWindowDays = 30
	hoursPerDay         = 24
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	bookingRepo  bookingRepo.Booking
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(bookingRepo bookingRepo.Booking, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDashboardStats, "stats")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard stats")

		return res, nil
	}

	properties, err := s.propertyRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties for dashboard")

		return res, fmt.Errorf("failed to get properties for dashboard: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for dashboard")

		return res, fmt.Errorf("failed to get bookings for dashboard: %w", err)
	}

	now := timezone.Now()

	res.TotalProperties = len(properties)
	res.OccupancyRate = occupancyRate(bookings, len(properties), now)
	res.MonthlyRevenue = monthlyRevenue(bookings, now)
	res.ActiveBookings = activeBookings(bookings, now)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

// occupancyRate is the share of property-nights booked over the next 30
// days, as a percentage. Confirmed bookings only, clipped to the window.
func occupancyRate(bookings []bookingModel.Booking, propertyCount int, now time.Time) float64 {
	if propertyCount == 0 {
		return 0
	}

	windowStart := now
	windowEnd := now.AddDate(0, 0, occupancyWindowDays)

	var occupiedNights float64

	for _, booking := range bookings {
		if booking.Status != bookingModel.StatusConfirmed {
			continue
		}

		start := booking.CheckIn
		if start.Before(windowStart) {
			start = windowStart
		}

		end := booking.CheckOut
		if end.After(windowEnd) {
			end = windowEnd
		}

		if nights := end.Sub(start).Hours() / hoursPerDay; nights > 0 {
			occupiedNights += nights
		}
	}

	capacity := float64(occupancyWindowDays * propertyCount)

	rate := occupiedNights / capacity * 100
	if rate > 100 {
		rate = 100
	}

	return rate
}

// monthlyRevenue sums the amounts of confirmed bookings checking in during
// the current calendar month. Amounts are decimal strings parsed to floats
// for the aggregate only; unparseable amounts are skipped with a log line.
func monthlyRevenue(bookings []bookingModel.Booking, now time.Time) float64 {
	var revenue float64

	for _, booking := range bookings {
		if booking.Status != bookingModel.StatusConfirmed {
			continue
		}

		if booking.CheckIn.Year() != now.Year() || booking.CheckIn.Month() != now.Month() {
			continue
		}

		amount, err := strconv.ParseFloat(booking.TotalAmount, 64)
		if err != nil {
			log.Warn().Str("booking_id", booking.ID).Str("amount", booking.TotalAmount).Msg("skipping unparseable booking amount")

			continue
		}

		revenue += amount
	}

	return revenue
}

// activeBookings counts confirmed reservations that have not checked out.
func activeBookings(bookings []bookingModel.Booking, now time.Time) int {
	var count int

	for _, booking := range bookings {
		if booking.Status == bookingModel.StatusConfirmed && booking.CheckOut.After(now) {
			count++
		}
	}

	return count
}
