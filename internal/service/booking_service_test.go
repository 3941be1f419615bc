package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/internal/model"
)

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestBookingService_Book(t *testing.T) {
	booking := &model.Booking{
		AppointmentDate: "2026-08-29",
		TreatmentTitle:  "Teeth Cleaning",
		Slot:            "08.00 AM - 08.30 AM",
		Email:           "patient@example.com",
	}

	t.Run("first booking is acknowledged with its id", func(t *testing.T) {
		id := primitive.NewObjectID()
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("Create", mock.Anything, booking).Return(id, nil)

		svc := NewBookingService(bookingRepo)
		result, err := svc.Book(context.Background(), booking)

		assert.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, id.Hex(), result.InsertedID)
		assert.Empty(t, result.Message)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("duplicate booking is a negative acknowledgement naming the date", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("Create", mock.Anything, booking).Return(primitive.NilObjectID, duplicateKeyErr())

		svc := NewBookingService(bookingRepo)
		result, err := svc.Book(context.Background(), booking)

		assert.NoError(t, err)
		assert.False(t, result.Acknowledged)
		assert.Empty(t, result.InsertedID)
		assert.Contains(t, result.Message, booking.AppointmentDate)
	})

	t.Run("sequential double booking: acknowledged then refused", func(t *testing.T) {
		id := primitive.NewObjectID()
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("Create", mock.Anything, booking).Return(id, nil).Once()
		bookingRepo.On("Create", mock.Anything, booking).Return(primitive.NilObjectID, duplicateKeyErr()).Once()

		svc := NewBookingService(bookingRepo)

		first, err := svc.Book(context.Background(), booking)
		assert.NoError(t, err)
		assert.True(t, first.Acknowledged)

		second, err := svc.Book(context.Background(), booking)
		assert.NoError(t, err)
		assert.False(t, second.Acknowledged)
		assert.Contains(t, second.Message, "2026-08-29")

		bookingRepo.AssertExpectations(t)
	})

	t.Run("store failures propagate as errors", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("Create", mock.Anything, booking).Return(primitive.NilObjectID, errors.New("connection reset"))

		svc := NewBookingService(bookingRepo)
		result, err := svc.Book(context.Background(), booking)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestBookingService_ListByEmail(t *testing.T) {
	bookings := []model.Booking{
		{AppointmentDate: "2026-08-29", TreatmentTitle: "Oral Surgery", Slot: "09.00 AM - 09.30 AM", Email: "patient@example.com"},
	}
	bookingRepo := new(MockBookingRepository)
	bookingRepo.On("ListByEmail", mock.Anything, "patient@example.com").Return(bookings, nil)

	svc := NewBookingService(bookingRepo)
	got, err := svc.ListByEmail(context.Background(), "patient@example.com")

	assert.NoError(t, err)
	assert.Equal(t, bookings, got)
}
