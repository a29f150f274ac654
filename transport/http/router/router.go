package router

import (
	"hotelops/internal/handlers/activity"
	"hotelops/internal/handlers/booking"
	"hotelops/internal/handlers/department"
	"hotelops/internal/handlers/employee"
	"hotelops/internal/handlers/feedback"
	"hotelops/internal/handlers/inventory"
	"hotelops/internal/handlers/menu"
	"hotelops/internal/handlers/order"
	"hotelops/internal/handlers/payment"
	"hotelops/internal/handlers/room"
	"hotelops/internal/handlers/schedule"
	"hotelops/internal/handlers/supplier"
	"hotelops/internal/handlers/task"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room       room.Handler
	Booking    booking.Handler
	Inventory  inventory.Handler
	Supplier   supplier.Handler
	Department department.Handler
	Employee   employee.Handler
	Task       task.Handler
	Feedback   feedback.Handler
	Menu       menu.Handler
	Order      order.Handler
	Schedule   schedule.Handler
	Payment    payment.Handler
	Activity   activity.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Supplier.Router(routerGroup)
		r.DomainHandlers.Department.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Task.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Activity.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
