package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
	"studysimplifier/internal/repositories"
)

// TodoService defines the business logic around a user's todos.
type TodoService interface {
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type todoService struct {
	repo repositories.TodoRepository
}

func NewTodoService(repo repositories.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	if todo.Category == "" {
		todo.Category = models.DefaultCategory
	}
	if todo.Color == "" {
		todo.Color = models.DefaultTodoColor
	}
	if todo.Priority == "" {
		todo.Priority = models.PriorityMedium
	}
	todo.Completed = false
	todo.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *todoService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Todo, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *todoService) Update(ctx context.Context, todo *models.Todo) error {
	return s.repo.Update(ctx, todo)
}

func (s *todoService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
