package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Highlight is a "trending" item. Same shape as an announcement but kept
// in its own collection and addressed by title.
type Highlight struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}
