package main

import (
	"context"
	"log"

	"doctorsportal/internal/config"
	"doctorsportal/internal/db"
	"doctorsportal/internal/repository"
	"doctorsportal/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	mongoDB, err := db.NewMongo(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		_ = mongoDB.Client().Disconnect(context.Background())
	}()
	log.Println("Connected to database")

	ctx := context.Background()
	treatmentRepo := repository.NewTreatmentRepository(mongoDB)
	bookingRepo := repository.NewBookingRepository(mongoDB)

	// Ensure the unique booking index exists before any traffic arrives.
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create booking indexes: %v", err)
	}
	log.Println("Booking indexes ensured")

	availability := service.NewAvailabilityService(treatmentRepo, bookingRepo)
	count, err := availability.SeedTreatments(ctx)
	if err != nil {
		log.Fatalf("Failed to seed treatments: %v", err)
	}

	if count == 0 {
		log.Println("Treatment templates already present, nothing to do")
		return
	}
	log.Printf("Seed completed successfully!")
	log.Printf("  - Treatment templates created: %d", count)
}
