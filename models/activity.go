package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Defaults applied when an activity is created without them.
const (
	DefaultActivityLocation = "SSN Campus"
	DefaultActivityStatus   = "upcoming"
)

// PhotoRef points at a stored photo owned by an album or activity.
// ID is a generated identifier so single photos can be removed atomically
// regardless of their position in the list.
type PhotoRef struct {
	ID           string `bson:"id" json:"id"`
	Filename     string `bson:"filename" json:"filename"`
	OriginalName string `bson:"original_name,omitempty" json:"original_name,omitempty"`
	URL          string `bson:"url" json:"url"`
}

// ReportRef points at an uploaded report document. PublicID is the
// storage-backend identifier needed to delete the object later.
type ReportRef struct {
	URL          string `bson:"url" json:"url"`
	PublicID     string `bson:"public_id" json:"public_id"`
	OriginalName string `bson:"original_name" json:"original_name"`
	UploadedAt   string `bson:"uploaded_at" json:"uploaded_at"`
	MimeType     string `bson:"mime_type" json:"mime_type"`
}

// Activity is a service activity run by the club. Date is an ISO calendar
// date (YYYY-MM-DD); listings sort on it descending, which is safe for the
// lexicographic string form.
type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Status      string             `bson:"status" json:"status"`
	Photos      []PhotoRef         `bson:"photos" json:"photos"`
	Reports     []ReportRef        `bson:"reports" json:"reports"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}
