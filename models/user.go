package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles recognized by the portal.
const (
	RoleAdmin        = "admin"
	RoleVerticalHead = "verticalhead"
	RoleVolunteer    = "volunteer"
)

// User is a portal account. The bcrypt hash and reset token are never
// serialized to JSON.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"` // bcrypt hash
	Role       string             `bson:"role" json:"role"`
	Vertical   string             `bson:"vertical,omitempty" json:"vertical,omitempty"` // set iff Role == verticalhead
	ResetToken string             `bson:"reset_token,omitempty" json:"-"`
}
