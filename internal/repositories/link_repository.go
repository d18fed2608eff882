package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studysimplifier/internal/models"
)

type LinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Link, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Link, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

type linkRepository struct {
	coll *mongo.Collection
}

func NewLinkRepository(db *mongo.Database) LinkRepository {
	return &linkRepository{coll: db.Collection(linksCollection)}
}

func (r *linkRepository) Create(ctx context.Context, link *models.Link) error {
	res, err := r.coll.InsertOne(ctx, link)
	if err != nil {
		return fmt.Errorf("link create: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		link.ID = oid
	}
	return nil
}

func (r *linkRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Link, error) {
	var l models.Link
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("link get by id: %w", err)
	}
	return &l, nil
}

func (r *linkRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Link, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("link find by user: %w", err)
	}
	defer cur.Close(ctx)

	links := []models.Link{}
	if err := cur.All(ctx, &links); err != nil {
		return nil, fmt.Errorf("link find by user decode: %w", err)
	}
	return links, nil
}

func (r *linkRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("link delete: %w", err)
	}
	return nil
}

func (r *linkRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("link delete by user: %w", err)
	}
	return nil
}

func (r *linkRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("link delete all: %w", err)
	}
	return nil
}
