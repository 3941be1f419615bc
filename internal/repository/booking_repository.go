package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	// Create inserts the booking. The unique index installed by EnsureIndexes
	// makes this the single conditional store operation guarding duplicates;
	// callers detect the duplicate case with mongo.IsDuplicateKeyError.
	Create(ctx context.Context, booking *model.Booking) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
	EnsureIndexes(ctx context.Context) error
}

type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{coll: db.Collection(bookingsCollection)}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *bookingRepository) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *bookingRepository) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	return r.list(ctx, bson.M{"appointmentDate": date})
}

func (r *bookingRepository) list(ctx context.Context, filter bson.M) ([]model.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// EnsureIndexes installs the unique compound index that makes duplicate
// booking detection atomic. One booking per (date, patient, treatment); the
// slot is deliberately not part of the key.
func (r *bookingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "email", Value: 1},
			{Key: "treatmentTitle", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_date_email_treatment"),
	})
	return err
}
