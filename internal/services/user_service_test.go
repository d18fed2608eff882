package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
)

func newUserService(users *fakeUserRepo, todos *fakeTodoRepo, links *fakeLinkRepo, emails *fakeEmailService) UserService {
	verification := NewVerificationService(users, emails, fakeAuthService{})
	return NewUserService(users, todos, links, verification, fakeAuthService{})
}

func TestRegisterCreatesUnverifiedUserWithCode(t *testing.T) {
	users := newFakeUserRepo()
	emails := newFakeEmailService()
	svc := newUserService(users, newFakeTodoRepo(), newFakeLinkRepo(), emails)

	user := &models.User{Email: "  Max@Example.COM ", FirstName: "Max", LastName: "Muster"}
	require.NoError(t, svc.Register(context.Background(), user, "geheim123"))

	assert.Equal(t, "max@example.com", user.Email)
	assert.Equal(t, "hash:geheim123", user.PasswordHash)
	assert.False(t, user.Verified)
	assert.NotNil(t, user.VerificationCode)
	assert.Len(t, emails.sentTo("max@example.com"), 1)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	existing := &models.User{ID: primitive.NewObjectID(), Email: "max@example.com"}
	users := newFakeUserRepo(existing)
	svc := newUserService(users, newFakeTodoRepo(), newFakeLinkRepo(), newFakeEmailService())

	user := &models.User{Email: "MAX@example.com"}
	err := svc.Register(context.Background(), user, "geheim123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterSucceedsWhenMailFails(t *testing.T) {
	users := newFakeUserRepo()
	emails := newFakeEmailService()
	emails.failFor["max@example.com"] = errors.New("smtp down")
	svc := newUserService(users, newFakeTodoRepo(), newFakeLinkRepo(), emails)

	user := &models.User{Email: "max@example.com"}
	require.NoError(t, svc.Register(context.Background(), user, "geheim123"))

	stored, err := users.GetByEmail(context.Background(), "max@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.VerificationCode)
}

func TestUpdateProfileChecksEmailUniqueness(t *testing.T) {
	me := &models.User{ID: primitive.NewObjectID(), Email: "me@example.com"}
	other := &models.User{ID: primitive.NewObjectID(), Email: "taken@example.com"}
	users := newFakeUserRepo(me, other)
	svc := newUserService(users, newFakeTodoRepo(), newFakeLinkRepo(), newFakeEmailService())

	err := svc.UpdateProfile(context.Background(), me, "Ich", "Selbst", "taken@example.com")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// keeping the own address is not a conflict
	require.NoError(t, svc.UpdateProfile(context.Background(), me, "Ich", "Selbst", "ME@example.com"))
	assert.Equal(t, "Ich", me.FirstName)
	assert.Equal(t, "me@example.com", me.Email)
}

func TestDeleteAccountCascades(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "gone@example.com"}
	other := &models.User{ID: primitive.NewObjectID(), Email: "stays@example.com"}
	users := newFakeUserRepo(user, other)

	due := time.Now().Add(time.Hour)
	todos := newFakeTodoRepo(
		models.Todo{ID: primitive.NewObjectID(), Title: "meins", DueDate: &due, UserID: user.ID},
		models.Todo{ID: primitive.NewObjectID(), Title: "fremd", DueDate: &due, UserID: other.ID},
	)
	links := newFakeLinkRepo(
		models.Link{ID: primitive.NewObjectID(), Title: "meins", UserID: user.ID},
		models.Link{ID: primitive.NewObjectID(), Title: "fremd", UserID: other.ID},
	)
	svc := newUserService(users, todos, links, newFakeEmailService())

	require.NoError(t, svc.DeleteAccount(context.Background(), user.ID))

	gone, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	remainingTodos, err := todos.FindByUser(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, remainingTodos, 1)
	mine, err := todos.FindByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	myLinks, err := links.FindByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, myLinks)
}
