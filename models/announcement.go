package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Announcement is a short notice shown on the portal home page.
// The frontend addresses announcements by activity name.
type Announcement struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ActivityName        string             `bson:"activityName" json:"activityName"`
	ActivityDescription string             `bson:"activityDescription" json:"activityDescription"`
}
