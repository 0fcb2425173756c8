//go:build wireinject
// +build wireinject

package di

import (
	"casa/config"
	"casa/infras/otel"
	"casa/infras/redis"
	"casa/infras/s3"
	"casa/shared/cache"
	"casa/transport/http"
	"casa/transport/http/middleware"
	"casa/transport/http/router"

	bookingRepository "casa/internal/domains/booking/repository"
	bookingService "casa/internal/domains/booking/service"
	dashboardService "casa/internal/domains/dashboard/service"
	expenseRepository "casa/internal/domains/expense/repository"
	expenseService "casa/internal/domains/expense/service"
	guestRepository "casa/internal/domains/guest/repository"
	guestService "casa/internal/domains/guest/service"
	maintenanceRepository "casa/internal/domains/maintenance/repository"
	maintenanceService "casa/internal/domains/maintenance/service"
	messageRepository "casa/internal/domains/message/repository"
	messageService "casa/internal/domains/message/service"
	propertyRepository "casa/internal/domains/property/repository"
	propertyService "casa/internal/domains/property/service"
	whatsappClient "casa/internal/domains/whatsapp/client"
	whatsappService "casa/internal/domains/whatsapp/service"

	bookingHandler "casa/internal/handlers/booking"
	dashboardHandler "casa/internal/handlers/dashboard"
	expenseHandler "casa/internal/handlers/expense"
	guestHandler "casa/internal/handlers/guest"
	maintenanceHandler "casa/internal/handlers/maintenance"
	messageHandler "casa/internal/handlers/message"
	propertyHandler "casa/internal/handlers/property"
	whatsappHandler "casa/internal/handlers/whatsapp"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var expenseDomain = wire.NewSet(
	expenseRepository.New,
	expenseService.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var whatsappDomain = wire.NewSet(
	whatsappClient.New,
	whatsappService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	guestDomain,
	bookingDomain,
	maintenanceDomain,
	expenseDomain,
	messageDomain,
	whatsappDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	guestHandler.New,
	bookingHandler.New,
	maintenanceHandler.New,
	expenseHandler.New,
	messageHandler.New,
	whatsappHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
