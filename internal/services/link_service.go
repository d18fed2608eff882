package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
	"studysimplifier/internal/repositories"
)

type LinkService interface {
	Create(ctx context.Context, link *models.Link) (*models.Link, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Link, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Link, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type linkService struct {
	repo repositories.LinkRepository
}

func NewLinkService(repo repositories.LinkRepository) LinkService {
	return &linkService{repo: repo}
}

func (s *linkService) Create(ctx context.Context, link *models.Link) (*models.Link, error) {
	if link.Category == "" {
		link.Category = models.DefaultCategory
	}
	link.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *linkService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Link, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *linkService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Link, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *linkService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
