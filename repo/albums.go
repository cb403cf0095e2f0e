package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

// Albums wraps the albums collection. Album names are unique. Photos are
// removed by their generated id with an atomic $pull, never by position,
// so concurrent removals cannot corrupt the list.
type Albums struct {
	col *mongo.Collection
}

func NewAlbums(db *mongo.Database) *Albums {
	return &Albums{col: db.Collection("albums")}
}

func (r *Albums) List(ctx context.Context) ([]models.Album, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer cursor.Close(ctx)

	albums := []models.Album{}
	if err := cursor.All(ctx, &albums); err != nil {
		return nil, fmt.Errorf("decode albums: %w", err)
	}
	return albums, nil
}

func (r *Albums) GetByName(ctx context.Context, name string) (models.Album, error) {
	var album models.Album
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&album)
	if err == mongo.ErrNoDocuments {
		return models.Album{}, ErrNotFound
	}
	if err != nil {
		return models.Album{}, fmt.Errorf("find album: %w", err)
	}
	return album, nil
}

func (r *Albums) Create(ctx context.Context, name string) error {
	err := r.col.FindOne(ctx, bson.M{"name": name}).Err()
	if err == nil {
		return ErrConflict
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("check existing album: %w", err)
	}
	if _, err := r.col.InsertOne(ctx, models.Album{Name: name, Photos: []models.PhotoRef{}}); err != nil {
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

func (r *Albums) AddPhotos(ctx context.Context, name string, photos []models.PhotoRef) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"name": name}, bson.M{
		"$push": bson.M{"photos": bson.M{"$each": photos}},
	})
	if err != nil {
		return fmt.Errorf("add photos: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemovePhoto pulls a single photo by its id and returns the removed ref
// so the caller can delete the stored bytes.
func (r *Albums) RemovePhoto(ctx context.Context, name, photoID string) (models.PhotoRef, error) {
	album, err := r.GetByName(ctx, name)
	if err != nil {
		return models.PhotoRef{}, err
	}

	var removed models.PhotoRef
	found := false
	for _, p := range album.Photos {
		if p.ID == photoID {
			removed = p
			found = true
			break
		}
	}
	if !found {
		return models.PhotoRef{}, ErrNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"name": name}, bson.M{
		"$pull": bson.M{"photos": bson.M{"id": photoID}},
	})
	if err != nil {
		return models.PhotoRef{}, fmt.Errorf("remove photo: %w", err)
	}
	if res.ModifiedCount == 0 {
		// raced with another removal
		return models.PhotoRef{}, ErrNotFound
	}
	return removed, nil
}

// DeleteByName removes the album and returns it so the caller can clean
// up the owned photo files.
func (r *Albums) DeleteByName(ctx context.Context, name string) (models.Album, error) {
	var album models.Album
	err := r.col.FindOneAndDelete(ctx, bson.M{"name": name}).Decode(&album)
	if err == mongo.ErrNoDocuments {
		return models.Album{}, ErrNotFound
	}
	if err != nil {
		return models.Album{}, fmt.Errorf("delete album: %w", err)
	}
	return album, nil
}
