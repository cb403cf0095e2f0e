package repo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

// Highlights wraps the trending-highlights collection. Titles are the
// public key and are expected unique modulo case, so lookups retry with an
// anchored case-insensitive match when the exact match misses.
type Highlights struct {
	col *mongo.Collection
}

func NewHighlights(db *mongo.Database) *Highlights {
	return &Highlights{col: db.Collection("highlights")}
}

func (r *Highlights) List(ctx context.Context) ([]models.Highlight, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	defer cursor.Close(ctx)

	highlights := []models.Highlight{}
	if err := cursor.All(ctx, &highlights); err != nil {
		return nil, fmt.Errorf("decode highlights: %w", err)
	}
	return highlights, nil
}

func (r *Highlights) Create(ctx context.Context, title, description string) error {
	_, err := r.col.InsertOne(ctx, models.Highlight{Title: title, Description: description})
	if err != nil {
		return fmt.Errorf("insert highlight: %w", err)
	}
	return nil
}

// ciTitleFilter builds an anchored case-insensitive filter for a title,
// ignoring surrounding whitespace. Anchoring keeps this an exact match,
// not a substring search.
func ciTitleFilter(title string) bson.M {
	return bson.M{"title": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(strings.TrimSpace(title)) + "$",
		"$options": "i",
	}}
}

// resolveByTitle finds a highlight by exact title, then falls back to the
// case-insensitive match.
func (r *Highlights) resolveByTitle(ctx context.Context, title string) (models.Highlight, error) {
	var h models.Highlight
	err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&h)
	if err == mongo.ErrNoDocuments && title != "" {
		err = r.col.FindOne(ctx, ciTitleFilter(title)).Decode(&h)
	}
	if err == mongo.ErrNoDocuments {
		return models.Highlight{}, ErrNotFound
	}
	if err != nil {
		return models.Highlight{}, fmt.Errorf("find highlight: %w", err)
	}
	return h, nil
}

func (r *Highlights) UpdateByTitle(ctx context.Context, oldTitle, newTitle, newDescription string) error {
	h, err := r.resolveByTitle(ctx, oldTitle)
	if err != nil {
		return err
	}
	_, err = r.col.UpdateByID(ctx, h.ID, bson.M{"$set": bson.M{
		"title":       newTitle,
		"description": newDescription,
	}})
	if err != nil {
		return fmt.Errorf("update highlight: %w", err)
	}
	return nil
}

func (r *Highlights) DeleteByTitle(ctx context.Context, title string) error {
	h, err := r.resolveByTitle(ctx, title)
	if err != nil {
		return err
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": h.ID}); err != nil {
		return fmt.Errorf("delete highlight: %w", err)
	}
	return nil
}

// DeleteByID removes a highlight by its hex id. Kept for legacy clients;
// title-based deletion is the primary path.
func (r *Highlights) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid id format", ErrValidation)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete highlight: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
