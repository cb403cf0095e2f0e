package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Album is a named photo collection. Name is unique. The album owns its
// photos: deleting the album deletes the stored bytes as well.
type Album struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name   string             `bson:"name" json:"name"`
	Photos []PhotoRef         `bson:"photos" json:"photos"`
}
