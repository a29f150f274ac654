//go:build wireinject
// +build wireinject

package di

import (
	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/infras/redis"
	"hotelops/infras/s3"
	"hotelops/infras/stripe"
	"hotelops/shared/cache"
	"hotelops/transport/http"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/router"
	"hotelops/transport/worker"

	activityRepository "hotelops/internal/domains/activity/repository"
	activityService "hotelops/internal/domains/activity/service"
	bookingRepository "hotelops/internal/domains/booking/repository"
	bookingService "hotelops/internal/domains/booking/service"
	departmentRepository "hotelops/internal/domains/department/repository"
	departmentService "hotelops/internal/domains/department/service"
	employeeRepository "hotelops/internal/domains/employee/repository"
	employeeService "hotelops/internal/domains/employee/service"
	feedbackRepository "hotelops/internal/domains/feedback/repository"
	feedbackService "hotelops/internal/domains/feedback/service"
	inventoryRepository "hotelops/internal/domains/inventory/repository"
	inventoryService "hotelops/internal/domains/inventory/service"
	menuRepository "hotelops/internal/domains/menu/repository"
	menuService "hotelops/internal/domains/menu/service"
	orderRepository "hotelops/internal/domains/order/repository"
	orderService "hotelops/internal/domains/order/service"
	paymentService "hotelops/internal/domains/payment/service"
	roomRepository "hotelops/internal/domains/room/repository"
	roomService "hotelops/internal/domains/room/service"
	scheduleRepository "hotelops/internal/domains/schedule/repository"
	scheduleService "hotelops/internal/domains/schedule/service"
	supplierRepository "hotelops/internal/domains/supplier/repository"
	supplierService "hotelops/internal/domains/supplier/service"
	taskRepository "hotelops/internal/domains/task/repository"
	taskService "hotelops/internal/domains/task/service"

	activityHandler "hotelops/internal/handlers/activity"
	bookingHandler "hotelops/internal/handlers/booking"
	departmentHandler "hotelops/internal/handlers/department"
	employeeHandler "hotelops/internal/handlers/employee"
	feedbackHandler "hotelops/internal/handlers/feedback"
	inventoryHandler "hotelops/internal/handlers/inventory"
	menuHandler "hotelops/internal/handlers/menu"
	orderHandler "hotelops/internal/handlers/order"
	paymentHandler "hotelops/internal/handlers/payment"
	roomHandler "hotelops/internal/handlers/room"
	scheduleHandler "hotelops/internal/handlers/schedule"
	supplierHandler "hotelops/internal/handlers/supplier"
	taskHandler "hotelops/internal/handlers/task"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	stripe.New,
	kafka.New,
	kafka.NewPublisher,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	roomRepository.New,
	bookingRepository.New,
	inventoryRepository.New,
	supplierRepository.New,
	departmentRepository.New,
	employeeRepository.New,
	taskRepository.New,
	feedbackRepository.New,
	menuRepository.New,
	orderRepository.New,
	scheduleRepository.New,
	activityRepository.New,
)

var services = wire.NewSet(
	roomService.New,
	bookingService.New,
	inventoryService.New,
	supplierService.New,
	departmentService.New,
	employeeService.New,
	taskService.New,
	feedbackService.New,
	menuService.New,
	orderService.New,
	scheduleService.New,
	paymentService.New,
	activityService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	inventoryHandler.New,
	supplierHandler.New,
	departmentHandler.New,
	employeeHandler.New,
	taskHandler.New,
	feedbackHandler.New,
	menuHandler.New,
	orderHandler.New,
	scheduleHandler.New,
	paymentHandler.New,
	activityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		employeeRepository.New,
		taskRepository.New,
		activityRepository.New,
		taskService.New,
		activityService.New,
		worker.New,
	)

	return &worker.Worker{}
}
