package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

// DefaultLatestLimit caps the "latest activities" listing.
const DefaultLatestLimit = 3

// Activities wraps the activities collection. The title is the primary
// addressing key for mutations; id-based paths exist for legacy clients
// and are tried only when no title is supplied.
type Activities struct {
	col *mongo.Collection
}

func NewActivities(db *mongo.Database) *Activities {
	return &Activities{col: db.Collection("activities")}
}

// ActivityPatch is a partial update for an activity.
type ActivityPatch struct {
	Title       *string
	Description *string
	Date        *string
	ImageURL    *string
}

func (p ActivityPatch) set() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	if p.ImageURL != nil {
		set["imageUrl"] = *p.ImageURL
	}
	return set
}

func (r *Activities) find(ctx context.Context, opts *options.FindOptions) ([]models.Activity, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

// List returns all activities, most recent date first.
func (r *Activities) List(ctx context.Context) ([]models.Activity, error) {
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

// Latest returns the n most recent activities (DefaultLatestLimit when
// n <= 0).
func (r *Activities) Latest(ctx context.Context, n int) ([]models.Activity, error) {
	if n <= 0 {
		n = DefaultLatestLimit
	}
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(int64(n)))
}

func (r *Activities) GetByID(ctx context.Context, id string) (models.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Activity{}, fmt.Errorf("%w: invalid activity id", ErrValidation)
	}
	var a models.Activity
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Activity{}, ErrNotFound
	}
	if err != nil {
		return models.Activity{}, fmt.Errorf("find activity: %w", err)
	}
	return a, nil
}

// Create inserts an activity, applying the campus defaults for location
// and status and normalizing nil slices.
func (r *Activities) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	if a.Location == "" {
		a.Location = models.DefaultActivityLocation
	}
	if a.Status == "" {
		a.Status = models.DefaultActivityStatus
	}
	if a.Photos == nil {
		a.Photos = []models.PhotoRef{}
	}
	if a.Reports == nil {
		a.Reports = []models.ReportRef{}
	}

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return models.Activity{}, fmt.Errorf("insert activity: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *Activities) UpdateByTitle(ctx context.Context, title string, patch ActivityPatch) error {
	var a models.Activity
	err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find activity: %w", err)
	}
	if set := patch.set(); len(set) > 0 {
		if _, err := r.col.UpdateByID(ctx, a.ID, bson.M{"$set": set}); err != nil {
			return fmt.Errorf("update activity: %w", err)
		}
	}
	return nil
}

func (r *Activities) UpdateByID(ctx context.Context, id string, patch ActivityPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid activity id", ErrValidation)
	}
	set := patch.set()
	if len(set) == 0 {
		return nil
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByTitle removes the activity and returns the deleted document so
// the caller can clean up owned attachments.
func (r *Activities) DeleteByTitle(ctx context.Context, title string) (models.Activity, error) {
	var a models.Activity
	err := r.col.FindOneAndDelete(ctx, bson.M{"title": title}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Activity{}, ErrNotFound
	}
	if err != nil {
		return models.Activity{}, fmt.Errorf("delete activity: %w", err)
	}
	return a, nil
}

func (r *Activities) DeleteByID(ctx context.Context, id string) (models.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Activity{}, fmt.Errorf("%w: invalid activity id", ErrValidation)
	}
	var a models.Activity
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Activity{}, ErrNotFound
	}
	if err != nil {
		return models.Activity{}, fmt.Errorf("delete activity: %w", err)
	}
	return a, nil
}

// Clear deletes every activity. Maintenance operation.
func (r *Activities) Clear(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("clear activities: %w", err)
	}
	return res.DeletedCount, nil
}
