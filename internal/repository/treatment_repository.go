package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/internal/model"
)

// Collection names match the original doctorsPortal database layout.
const (
	treatmentsCollection = "availableAppointments"
	bookingsCollection   = "bookingAppointments"
	usersCollection      = "users"
)

// TreatmentRepository defines treatment template persistence operations.
type TreatmentRepository interface {
	List(ctx context.Context) ([]model.Treatment, error)
	// ListAvailability resolves remaining slots per treatment for the given
	// date inside the store's aggregation pipeline.
	ListAvailability(ctx context.Context, date string) ([]model.Treatment, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, treatments []model.Treatment) (int, error)
}

type treatmentRepository struct {
	coll *mongo.Collection
}

// NewTreatmentRepository creates a new treatment repository.
func NewTreatmentRepository(db *mongo.Database) TreatmentRepository {
	return &treatmentRepository{coll: db.Collection(treatmentsCollection)}
}

// List returns every treatment template, full slot lists included.
func (r *treatmentRepository) List(ctx context.Context) ([]model.Treatment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var treatments []model.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, err
	}
	return treatments, nil
}

// ListAvailability joins each template against the bookings of the given date
// and removes the booked slots store-side:
//
//	$lookup bookings on treatmentTitle == name, filtered to the date,
//	$project the booked slot labels, then $setDifference them away.
func (r *treatmentRepository) ListAvailability(ctx context.Context, date string) ([]model.Treatment, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: bookingsCollection},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatmentTitle"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$appointmentDate", date}},
					}},
				}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "booked", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$booked"},
					{Key: "as", Value: "book"},
					{Key: "in", Value: "$$book.slot"},
				}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: bson.D{
				{Key: "$setDifference", Value: bson.A{"$slots", "$booked"}},
			}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var treatments []model.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *treatmentRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *treatmentRepository) InsertMany(ctx context.Context, treatments []model.Treatment) (int, error) {
	docs := make([]interface{}, 0, len(treatments))
	for _, t := range treatments {
		docs = append(docs, t)
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
