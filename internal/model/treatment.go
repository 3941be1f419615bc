package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Treatment is a static appointment template: a treatment name and its full
// daily slot list. Seeded once, never mutated by request handlers.
type Treatment struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Slots []string           `json:"slots" bson:"slots"`
}
