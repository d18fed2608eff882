package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studysimplifier/internal/models"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	DeleteAll(ctx context.Context) error

	// FindDueBetween returns incomplete todos with a due date in [start, end),
	// across all users.
	FindDueBetween(ctx context.Context, start, end time.Time) ([]models.Todo, error)
}

type todoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) TodoRepository {
	return &todoRepository{coll: db.Collection(todosCollection)}
}

func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	res, err := r.coll.InsertOne(ctx, todo)
	if err != nil {
		return fmt.Errorf("todo create: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid
	}
	return nil
}

func (r *todoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	var t models.Todo
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("todo get by id: %w", err)
	}
	return &t, nil
}

func (r *todoRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("todo find by user: %w", err)
	}
	defer cur.Close(ctx)

	todos := []models.Todo{}
	if err := cur.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("todo find by user decode: %w", err)
	}
	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	update := bson.M{"$set": bson.M{
		"title":     todo.Title,
		"dueDate":   todo.DueDate,
		"completed": todo.Completed,
		"category":  todo.Category,
		"color":     todo.Color,
		"priority":  todo.Priority,
	}}
	if _, err := r.coll.UpdateByID(ctx, todo.ID, update); err != nil {
		return fmt.Errorf("todo update: %w", err)
	}
	return nil
}

func (r *todoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("todo delete: %w", err)
	}
	return nil
}

func (r *todoRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		return fmt.Errorf("todo delete by user: %w", err)
	}
	return nil
}

func (r *todoRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("todo delete all: %w", err)
	}
	return nil
}

func (r *todoRepository) FindDueBetween(ctx context.Context, start, end time.Time) ([]models.Todo, error) {
	filter := bson.M{
		"dueDate":   bson.M{"$gte": start, "$lt": end},
		"completed": false,
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("todo find due between: %w", err)
	}
	defer cur.Close(ctx)

	todos := []models.Todo{}
	if err := cur.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("todo find due between decode: %w", err)
	}
	return todos, nil
}
