package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
)

// In-memory repository and mail fakes. The notification fan-out sends from
// multiple goroutines, so every fake guards its state with a mutex.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User

	getByIDErr map[primitive.ObjectID]error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:      make(map[primitive.ObjectID]*models.User),
		getByIDErr: make(map[primitive.ObjectID]error),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.getByIDErr[id]; err != nil {
		return nil, err
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.users[user.ID]; ok {
		stored.FirstName = user.FirstName
		stored.LastName = user.LastName
		stored.Email = user.Email
	}
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (r *fakeUserRepo) UpdateProfileImage(ctx context.Context, id primitive.ObjectID, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.ProfileImage = image
	}
	return nil
}

func (r *fakeUserRepo) SetNotifications(ctx context.Context, id primitive.ObjectID, prefs models.Notifications) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	p := prefs
	u.Notifications = &p
	return nil
}

func (r *fakeUserRepo) SetVerificationCode(ctx context.Context, id primitive.ObjectID, code string, expires time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	c, e := code, expires
	u.VerificationCode = &c
	u.VerificationCodeExpires = &e
	return nil
}

func (r *fakeUserRepo) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.Verified = true
	u.VerificationCode = nil
	u.VerificationCodeExpires = nil
	return nil
}

func (r *fakeUserRepo) FindWithEmailPreference(ctx context.Context, category models.NotificationCategory) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		if u.NotificationsAllow(models.ChannelEmail, category) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[primitive.ObjectID]*models.User)
	return nil
}

type fakeTodoRepo struct {
	mu    sync.Mutex
	todos []models.Todo
}

func newFakeTodoRepo(todos ...models.Todo) *fakeTodoRepo {
	return &fakeTodoRepo{todos: todos}
}

func (r *fakeTodoRepo) Create(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}
	r.todos = append(r.todos, *todo)
	return nil
}

func (r *fakeTodoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.todos {
		if r.todos[i].ID == id {
			t := r.todos[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTodoRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Todo{}
	for _, t := range r.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.todos {
		if r.todos[i].ID == todo.ID {
			r.todos[i] = *todo
			return nil
		}
	}
	return errors.New("todo not found")
}

func (r *fakeTodoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeTodoRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.todos[:0]
	for _, t := range r.todos {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	r.todos = kept
	return nil
}

func (r *fakeTodoRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos = nil
	return nil
}

func (r *fakeTodoRepo) FindDueBetween(ctx context.Context, start, end time.Time) ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Todo{}
	for _, t := range r.todos {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if !t.DueDate.Before(start) && t.DueDate.Before(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeEmailService records every send and can be told to fail for specific
// recipients.
type fakeEmailService struct {
	mu      sync.Mutex
	sent    []Mail
	failFor map[string]error
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{failFor: make(map[string]error)}
}

func (s *fakeEmailService) Send(m Mail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failFor[m.To]; err != nil {
		return err
	}
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeEmailService) SendVerificationEmail(user *models.User, code string) error {
	return s.Send(Mail{To: user.Email, Subject: "verify", Text: code})
}

func (s *fakeEmailService) SendTaskDueEmail(user *models.User, todo *models.Todo) error {
	return s.Send(Mail{To: user.Email, Subject: "due", Text: todo.Title})
}

func (s *fakeEmailService) SendNewFeatureEmail(user *models.User, title, description string) error {
	return s.Send(Mail{To: user.Email, Subject: "feature", Text: title})
}

func (s *fakeEmailService) sentTo(email string) []Mail {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Mail
	for _, m := range s.sent {
		if m.To == email {
			out = append(out, m)
		}
	}
	return out
}

func (s *fakeEmailService) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type fakeLinkRepo struct {
	mu    sync.Mutex
	links []models.Link
}

func newFakeLinkRepo(links ...models.Link) *fakeLinkRepo {
	return &fakeLinkRepo{links: links}
}

func (r *fakeLinkRepo) Create(ctx context.Context, link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if link.ID.IsZero() {
		link.ID = primitive.NewObjectID()
	}
	r.links = append(r.links, *link)
	return nil
}

func (r *fakeLinkRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.links {
		if r.links[i].ID == id {
			l := r.links[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (r *fakeLinkRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Link{}
	for _, l := range r.links {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLinkRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.links {
		if r.links[i].ID == id {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeLinkRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.links[:0]
	for _, l := range r.links {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	r.links = kept
	return nil
}

func (r *fakeLinkRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = nil
	return nil
}

type fakeAuthService struct{}

func (fakeAuthService) HashPassword(plain string) (string, error) { return "hash:" + plain, nil }

func (fakeAuthService) CheckPassword(hash, plain string) error {
	if hash != "hash:"+plain {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakeAuthService) GenerateSessionToken(user *models.User) (string, error) {
	return "token-" + user.ID.Hex(), nil
}
