package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one slot for one treatment on one
// date. Bookings are inserted once and never mutated or deleted.
type Booking struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AppointmentDate string             `json:"appointmentDate" bson:"appointmentDate"`
	TreatmentTitle  string             `json:"treatmentTitle" bson:"treatmentTitle"`
	Slot            string             `json:"slot" bson:"slot"`
	Email           string             `json:"email" bson:"email"`
	Patient         string             `json:"patient,omitempty" bson:"patient,omitempty"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
}
