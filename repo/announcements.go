package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

// Announcements wraps the announcements collection. The activity name is
// the public addressing key; mutations resolve the name to a document
// first so a rename cannot strand the record.
type Announcements struct {
	col *mongo.Collection
}

func NewAnnouncements(db *mongo.Database) *Announcements {
	return &Announcements{col: db.Collection("announcements")}
}

func (r *Announcements) List(ctx context.Context) ([]models.Announcement, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	anns := []models.Announcement{}
	if err := cursor.All(ctx, &anns); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	return anns, nil
}

func (r *Announcements) Create(ctx context.Context, name, description string) error {
	_, err := r.col.InsertOne(ctx, models.Announcement{
		ActivityName:        name,
		ActivityDescription: description,
	})
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

func (r *Announcements) UpdateByName(ctx context.Context, oldName, newName, newDescription string) error {
	var ann models.Announcement
	err := r.col.FindOne(ctx, bson.M{"activityName": oldName}).Decode(&ann)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find announcement: %w", err)
	}

	_, err = r.col.UpdateByID(ctx, ann.ID, bson.M{"$set": bson.M{
		"activityName":        newName,
		"activityDescription": newDescription,
	}})
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	return nil
}

func (r *Announcements) DeleteByName(ctx context.Context, name string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"activityName": name})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
