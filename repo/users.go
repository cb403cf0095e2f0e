package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/VishnuKumar2311019/NSS-Website-Backend/models"
)

// Users wraps the users collection. Email is the natural key: every public
// operation addresses a user by email, with the Mongo _id used internally
// once the document is resolved.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

// UserPatch is a partial update. Nil fields are left untouched.
// PasswordHash must already be hashed by the caller.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	Role         *string
	Vertical     *string
}

// List returns all users with the password hash projected away.
func (r *Users) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *Users) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Create inserts a new user. Fails with ErrConflict when the email is
// taken and ErrValidation when the vertical invariant is violated.
func (r *Users) Create(ctx context.Context, user models.User) error {
	if user.Role == models.RoleVerticalHead && user.Vertical == "" {
		return fmt.Errorf("%w: vertical name is required for vertical head", ErrValidation)
	}
	if user.Role != models.RoleVerticalHead {
		user.Vertical = ""
	}

	err := r.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return ErrConflict
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("check existing user: %w", err)
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// buildUserUpdate turns a patch into $set/$unset documents. Moving into
// the verticalhead role requires a vertical; moving out clears it. A
// vertical without a role change applies only while the user already is a
// vertical head, so no other role can ever carry one.
func buildUserUpdate(currentRole string, patch UserPatch) (set bson.M, unset bson.M, err error) {
	set = bson.M{}
	unset = bson.M{}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
		if *patch.Role == models.RoleVerticalHead {
			if patch.Vertical == nil || *patch.Vertical == "" {
				return nil, nil, fmt.Errorf("%w: vertical name is required for vertical head", ErrValidation)
			}
			set["vertical"] = *patch.Vertical
		} else {
			unset["vertical"] = ""
		}
	} else if patch.Vertical != nil && *patch.Vertical != "" && currentRole == models.RoleVerticalHead {
		set["vertical"] = *patch.Vertical
	}
	return set, unset, nil
}

func (r *Users) UpdateByEmail(ctx context.Context, email string, patch UserPatch) error {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	set, unset, err := buildUserUpdate(user.Role, patch)
	if err != nil {
		return err
	}
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := r.col.UpdateByID(ctx, user.ID, update); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *Users) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetResetToken stores a one-time password-reset token on the user.
func (r *Users) SetResetToken(ctx context.Context, email, token string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"reset_token": token}})
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Users) GetByResetToken(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"reset_token": token}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user by token: %w", err)
	}
	return user, nil
}

// ResetPassword sets the new hash and clears the token in one write, so a
// token cannot be replayed after a successful reset.
func (r *Users) ResetPassword(ctx context.Context, token, passwordHash string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"reset_token": token}, bson.M{
		"$set":   bson.M{"password": passwordHash},
		"$unset": bson.M{"reset_token": ""},
	})
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
