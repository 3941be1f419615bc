package main

import (
	"context"
	"log"
	"net/http"

	_ "doctorsportal/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"doctorsportal/internal/auth"
	"doctorsportal/internal/cache"
	"doctorsportal/internal/config"
	"doctorsportal/internal/db"
	"doctorsportal/internal/handler"
	"doctorsportal/internal/repository"
	"doctorsportal/internal/router"
	"doctorsportal/internal/service"
)

// @title Doctors Portal API
// @version 1.0
// @description Appointment booking backend: slot availability per treatment, duplicate-guarded bookings and JWT-gated user administration.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	mongoDB, err := db.NewMongo(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	treatmentRepo := repository.NewTreatmentRepository(mongoDB)
	bookingRepo := repository.NewBookingRepository(mongoDB)
	userRepo := repository.NewUserRepository(mongoDB)

	// The unique booking index is what makes the duplicate guard atomic.
	if err := bookingRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("booking indexes: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	availabilityService := service.NewAvailabilityService(treatmentRepo, bookingRepo)
	bookingService := service.NewBookingService(bookingRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	seedHandler := handler.NewSeedHandler(availabilityService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		availabilityHandler,
		bookingHandler,
		authHandler,
		userHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
