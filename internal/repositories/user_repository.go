package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"studysimplifier/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error
	UpdateProfileImage(ctx context.Context, id primitive.ObjectID, image string) error
	SetNotifications(ctx context.Context, id primitive.ObjectID, prefs models.Notifications) error

	// SetVerificationCode writes code and expiry in one update; the pair is
	// never written separately.
	SetVerificationCode(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error
	// MarkVerified flips verified to true and clears code and expiry in one update.
	MarkVerified(ctx context.Context, id primitive.ObjectID) error

	FindWithEmailPreference(ctx context.Context, category models.NotificationCategory) ([]*models.User, error)

	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("user create: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("user get by id: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("user get by email: %w", err)
	}
	return &u, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
	}}
	if _, err := r.coll.UpdateByID(ctx, user.ID, update); err != nil {
		return fmt.Errorf("user update profile: %w", err)
	}
	return nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"password": hash}}); err != nil {
		return fmt.Errorf("user update password: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateProfileImage(ctx context.Context, id primitive.ObjectID, image string) error {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"profileImage": image}}); err != nil {
		return fmt.Errorf("user update profile image: %w", err)
	}
	return nil
}

func (r *userRepository) SetNotifications(ctx context.Context, id primitive.ObjectID, prefs models.Notifications) error {
	if _, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"notifications": prefs}}); err != nil {
		return fmt.Errorf("user set notifications: %w", err)
	}
	return nil
}

func (r *userRepository) SetVerificationCode(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	update := bson.M{"$set": bson.M{
		"verificationCode":        code,
		"verificationCodeExpires": expires,
	}}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("user set verification code: %w", err)
	}
	return nil
}

func (r *userRepository) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"verified":                true,
		"verificationCode":        nil,
		"verificationCodeExpires": nil,
	}}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("user mark verified: %w", err)
	}
	return nil
}

func (r *userRepository) FindWithEmailPreference(ctx context.Context, category models.NotificationCategory) ([]*models.User, error) {
	filter := bson.M{
		"notifications.email.enabled":          true,
		"notifications.email." + string(category): true,
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("user find with preference: %w", err)
	}
	defer cur.Close(ctx)

	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("user find with preference decode: %w", err)
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("user delete: %w", err)
	}
	return nil
}

func (r *userRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("user delete all: %w", err)
	}
	return nil
}
