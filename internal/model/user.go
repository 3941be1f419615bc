package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role the system ever assigns.
const RoleAdmin = "admin"

// User represents a signed-up user. Role is the only mutable attribute and is
// only ever set to "admin".
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Email string             `json:"email" bson:"email"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
