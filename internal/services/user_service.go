package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
	"studysimplifier/internal/repositories"
)

var ErrEmailTaken = errors.New("email already registered")

type UserService interface {
	Register(ctx context.Context, user *models.User, plainPassword string) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User, firstName, lastName, email string) error
	UpdateProfileImage(ctx context.Context, user *models.User, image string) error
	ChangePassword(ctx context.Context, user *models.User, newPassword string) error
	DeleteAccount(ctx context.Context, id primitive.ObjectID) error
}

type userService struct {
	repo         repositories.UserRepository
	todos        repositories.TodoRepository
	links        repositories.LinkRepository
	verification *VerificationService
	auth         AuthService
}

func NewUserService(
	repo repositories.UserRepository,
	todos repositories.TodoRepository,
	links repositories.LinkRepository,
	verification *VerificationService,
	auth AuthService,
) UserService {
	return &userService{
		repo:         repo,
		todos:        todos,
		links:        links,
		verification: verification,
		auth:         auth,
	}
}

// Register creates an unverified account and issues the first verification
// code. A flaky mail transport (or even a failed code write) does not fail
// registration; the user can request a resend.
func (s *userService) Register(ctx context.Context, user *models.User, plainPassword string) error {
	email := strings.TrimSpace(strings.ToLower(user.Email))
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := s.auth.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.Email = email
	user.PasswordHash = hash
	user.Verified = false
	user.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	if err := s.verification.IssueCode(ctx, user); err != nil {
		log.Printf("[user][register] warning: failed to issue verification code for %s: %v", user.Email, err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

func (s *userService) UpdateProfile(ctx context.Context, user *models.User, firstName, lastName, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email != user.Email {
		existing, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailTaken
		}
	}
	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	return s.repo.UpdateProfile(ctx, user)
}

func (s *userService) UpdateProfileImage(ctx context.Context, user *models.User, image string) error {
	user.ProfileImage = image
	return s.repo.UpdateProfileImage(ctx, user.ID, image)
}

func (s *userService) ChangePassword(ctx context.Context, user *models.User, newPassword string) error {
	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.repo.UpdatePasswordHash(ctx, user.ID, hash)
}

// DeleteAccount removes the user together with all their todos and links.
// Dependents go first so a failure cannot orphan records behind a deleted
// owner.
func (s *userService) DeleteAccount(ctx context.Context, id primitive.ObjectID) error {
	if err := s.todos.DeleteByUser(ctx, id); err != nil {
		return err
	}
	if err := s.links.DeleteByUser(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
