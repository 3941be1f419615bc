package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

// BookResult mirrors the store acknowledgement shape the clients consume. A
// duplicate booking is a negative acknowledgement, not an error.
type BookResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}

// BookingService handles booking operations.
type BookingService interface {
	// Book persists the booking unless one already exists for the same
	// (date, email, treatment), regardless of slot. The guard is a single
	// conditional insert against the unique index, so concurrent duplicate
	// requests cannot both succeed.
	Book(ctx context.Context, booking *model.Booking) (*BookResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository) BookingService {
	return &bookingService{bookings: bookings}
}

func (s *bookingService) Book(ctx context.Context, booking *model.Booking) (*BookResult, error) {
	id, err := s.bookings.Create(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return &BookResult{
			Acknowledged: false,
			Message:      fmt.Sprintf("you already have a booking on %s", booking.AppointmentDate),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return &BookResult{
		Acknowledged: true,
		InsertedID:   id.Hex(),
	}, nil
}

func (s *bookingService) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return s.bookings.ListByEmail(ctx, email)
}
