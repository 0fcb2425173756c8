package router

import (
	"casa/internal/handlers/booking"
	"casa/internal/handlers/dashboard"
	"casa/internal/handlers/expense"
	"casa/internal/handlers/guest"
	"casa/internal/handlers/maintenance"
	"casa/internal/handlers/message"
	"casa/internal/handlers/property"
	"casa/internal/handlers/whatsapp"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property    property.Handler
	Guest       guest.Handler
	Booking     booking.Handler
	Maintenance maintenance.Handler
	Expense     expense.Handler
	Message     message.Handler
	WhatsApp    whatsapp.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Expense.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.WhatsApp.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
