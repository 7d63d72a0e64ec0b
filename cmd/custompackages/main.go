package main

import (
	"context"

	"wanderbook/internal/availability"
	bookinghandler "wanderbook/internal/bookings/handler"
	bookingrepo "wanderbook/internal/bookings/repository"
	bookingservice "wanderbook/internal/bookings/service"
	bookingvalidator "wanderbook/internal/bookings/validator"
	cataloghandler "wanderbook/internal/catalog/handler"
	catalogrepo "wanderbook/internal/catalog/repository"
	catalogservice "wanderbook/internal/catalog/service"
	catalogvalidator "wanderbook/internal/catalog/validator"
	"wanderbook/internal/health"
	"wanderbook/internal/notifications"
	resourcerepo "wanderbook/internal/resources/repository"
	"wanderbook/pkg/app"
	"wanderbook/pkg/config"
	"wanderbook/pkg/contracts"
	"wanderbook/pkg/model"
)

const (
	ServiceName = "custom-packages"
	RoutePrefix = "/api/custom-packages"
)

func main() {
	// Load validates and logs the configuration
	cfg := config.Load(ServiceName)

	cfg.SetMongo()
	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Custom Packages service")

	notifier, err := notifications.New(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create notifier", "backend", cfg.NotifierBackend, "error", err)
	}
	dispatcher := notifications.NewDispatcher(notifier, cfg.NotificationTimeout, cfg.Log)

	handlers := initHandlers(cfg, dispatcher)

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown(func() {
		if err := dispatcher.Close(cfg.ShutdownTimeout); err != nil {
			cfg.Log.Error("Failed to close notifier", "error", err)
		}
	})
	serverApp.SetApp(RoutePrefix, healthChecks(cfg), handlers...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, dispatcher *notifications.Dispatcher) []contracts.Handler {
	employees := resourcerepo.NewMongoEmployeeRepository(cfg)
	hotels := resourcerepo.NewMongoHotelRepository(cfg)
	vehicles := resourcerepo.NewMongoVehicleRepository(cfg)

	resolver := availability.NewResolver(map[model.ResourceKind]availability.ResourceFinder{
		model.ResourceEmployee: employees,
		model.ResourceHotel:    hotels,
		model.ResourceVehicle:  vehicles,
	}, cfg.Log)

	var cache availability.Cache
	if cfg.Client.Redis != nil {
		cache = availability.NewRedisCache(cfg.Client.Redis)
	}
	availabilityService := availability.NewService(employees, hotels, vehicles, cache, cfg.AvailableItemsCacheTTL, cfg.Log)

	categoryService := catalogservice.NewCategoryService(
		catalogrepo.NewMongoCategoryRepository(cfg),
		catalogvalidator.NewCategoryValidator(cfg.Log),
		resolver,
		cfg,
	)

	bookingService := bookingservice.NewBookingService(
		bookingrepo.NewMongoBookingRepository(cfg),
		bookingvalidator.NewBookingValidator(cfg.Log),
		dispatcher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName, "notifier", cfg.NotifierBackend)

	return []contracts.Handler{
		cataloghandler.NewCategoryHandler(categoryService, cfg.Log),
		availability.NewHandler(availabilityService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	}
}

func healthChecks(cfg *config.Config) []health.Check {
	checks := []health.Check{{
		Name: "mongodb",
		Ping: func(ctx context.Context) error {
			return cfg.Client.Mongo.Ping(ctx, nil)
		},
	}}
	if cfg.Client.Redis != nil {
		checks = append(checks, health.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error {
				return cfg.Client.Redis.Ping(ctx).Err()
			},
		})
	}
	return checks
}
