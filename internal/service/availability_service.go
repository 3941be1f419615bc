package service

import (
	"context"

	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

// DefaultTreatments is the reference slot catalogue installed by the seed
// command and the seed endpoint when the collection is empty.
var DefaultTreatments = []model.Treatment{
	{Name: "Teeth Orthodontics", Slots: defaultSlots},
	{Name: "Cosmetic Dentistry", Slots: defaultSlots},
	{Name: "Teeth Cleaning", Slots: defaultSlots},
	{Name: "Cavity Protection", Slots: defaultSlots},
	{Name: "Pediatric Dental", Slots: defaultSlots},
	{Name: "Oral Surgery", Slots: defaultSlots},
}

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

// AvailabilityService resolves remaining open slots per treatment for a date.
// The date is an opaque string key; no calendar validation is performed.
type AvailabilityService interface {
	// AvailableAppointments computes availability in application code:
	// fetch all templates, fetch the date's bookings, subtract.
	AvailableAppointments(ctx context.Context, date string) ([]model.Treatment, error)
	// AvailableAppointmentsAggregated computes the same result inside the
	// store's aggregation pipeline. Both realizations must agree.
	AvailableAppointmentsAggregated(ctx context.Context, date string) ([]model.Treatment, error)
	// SeedTreatments installs DefaultTreatments when the collection is empty
	// and reports how many templates were inserted.
	SeedTreatments(ctx context.Context) (int, error)
}

type availabilityService struct {
	treatments repository.TreatmentRepository
	bookings   repository.BookingRepository
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(treatments repository.TreatmentRepository, bookings repository.BookingRepository) AvailabilityService {
	return &availabilityService{
		treatments: treatments,
		bookings:   bookings,
	}
}

func (s *availabilityService) AvailableAppointments(ctx context.Context, date string) ([]model.Treatment, error) {
	treatments, err := s.treatments.List(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	// slot labels taken per treatment title on this date
	bookedSlots := make(map[string]map[string]struct{})
	for _, b := range booked {
		set, ok := bookedSlots[b.TreatmentTitle]
		if !ok {
			set = make(map[string]struct{})
			bookedSlots[b.TreatmentTitle] = set
		}
		set[b.Slot] = struct{}{}
	}

	for i := range treatments {
		treatments[i].Slots = remainingSlots(treatments[i].Slots, bookedSlots[treatments[i].Name])
	}
	return treatments, nil
}

// remainingSlots is the slot set-subtraction: template order is preserved and
// template duplicates are not collapsed. A fully booked treatment yields an
// empty list, not nil, so it still serializes as [].
func remainingSlots(slots []string, booked map[string]struct{}) []string {
	remaining := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; !taken {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

func (s *availabilityService) AvailableAppointmentsAggregated(ctx context.Context, date string) ([]model.Treatment, error) {
	return s.treatments.ListAvailability(ctx, date)
}

func (s *availabilityService) SeedTreatments(ctx context.Context) (int, error) {
	count, err := s.treatments.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	return s.treatments.InsertMany(ctx, DefaultTreatments)
}
