package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"studysimplifier/internal/models"
	"studysimplifier/internal/repositories"
)

const (
	// dueLookahead is the rolling window the sweep scans: todos due in
	// [now, now+24h).
	dueLookahead = 24 * time.Hour

	// sendConcurrency caps simultaneous SMTP connections during fan-out.
	sendConcurrency = 8

	// sendTimeout bounds a single delivery attempt so one slow recipient
	// cannot stall the batch.
	sendTimeout = 15 * time.Second
)

var errSendTimeout = errors.New("email send timed out")

// SweepResult reports how many todos fell into the due window, whether or
// not their owners were notified.
type SweepResult struct {
	TasksConsidered int `json:"tasksProcessed"`
}

// BroadcastResult reports how many users were eligible for an announcement.
// Delivery successes are not tracked.
type BroadcastResult struct {
	UsersNotified int `json:"usersNotified"`
}

// NotificationService runs the due-task reminder sweep and the
// feature-announcement broadcast. Both are fan-outs with isolated
// per-recipient failures: a failed or slow send is logged and never aborts
// the batch.
type NotificationService struct {
	todos  repositories.TodoRepository
	users  repositories.UserRepository
	emails EmailService
}

func NewNotificationService(todos repositories.TodoRepository, users repositories.UserRepository, emails EmailService) *NotificationService {
	return &NotificationService{
		todos:  todos,
		users:  users,
		emails: emails,
	}
}

// RunDueTaskSweep finds incomplete todos due within the next 24 hours and
// emails each owner who opted into due-task emails. The sweep keeps no
// sent-marker: invoking it twice over the same window notifies the same
// still-due todos again.
func (s *NotificationService) RunDueTaskSweep(ctx context.Context, now time.Time) (SweepResult, error) {
	due, err := s.todos.FindDueBetween(ctx, now, now.Add(dueLookahead))
	if err != nil {
		return SweepResult{}, err
	}
	log.Printf("[notify][sweep] %d tasks due in the next 24 hours", len(due))

	sem := make(chan struct{}, sendConcurrency)
	var wg sync.WaitGroup

	for i := range due {
		todo := due[i]

		user, err := s.users.GetByID(ctx, todo.UserID)
		if err != nil {
			log.Printf("[notify][sweep] owner lookup failed for todo %s: %v", todo.ID.Hex(), err)
			continue
		}
		if user == nil {
			// dangling owner reference, nothing to notify
			log.Printf("[notify][sweep] todo %s has no associated user", todo.ID.Hex())
			continue
		}
		if !user.NotificationsAllow(models.ChannelEmail, models.CategoryDueTasks) {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := sendBounded(func() error {
				return s.emails.SendTaskDueEmail(user, &todo)
			}); err != nil {
				log.Printf("[notify][sweep] send failed user=%s todo=%s: %v", user.Email, todo.ID.Hex(), err)
			}
		}()
	}
	wg.Wait()

	return SweepResult{TasksConsidered: len(due)}, nil
}

// BroadcastNewFeature emails every user opted into feature announcements.
// The returned count is the number of eligible recipients, not of
// successful deliveries.
func (s *NotificationService) BroadcastNewFeature(ctx context.Context, title, description string) (BroadcastResult, error) {
	users, err := s.users.FindWithEmailPreference(ctx, models.CategoryNewFeatures)
	if err != nil {
		return BroadcastResult{}, err
	}
	log.Printf("[notify][broadcast] sending %q to %d users", title, len(users))

	sem := make(chan struct{}, sendConcurrency)
	var wg sync.WaitGroup

	for _, user := range users {
		user := user
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := sendBounded(func() error {
				return s.emails.SendNewFeatureEmail(user, title, description)
			}); err != nil {
				log.Printf("[notify][broadcast] send failed user=%s: %v", user.Email, err)
			}
		}()
	}
	wg.Wait()

	return BroadcastResult{UsersNotified: len(users)}, nil
}

// Settings returns the user's resolved notification preferences. When the
// stored document has none yet, the defaults are materialized with an
// explicit write so later preference queries see them.
func (s *NotificationService) Settings(ctx context.Context, user *models.User) (models.Notifications, error) {
	if user.Notifications != nil {
		return *user.Notifications, nil
	}
	prefs := models.DefaultNotifications()
	if err := s.users.SetNotifications(ctx, user.ID, prefs); err != nil {
		return models.Notifications{}, err
	}
	user.Notifications = &prefs
	return prefs, nil
}

// UpdateSettings merges a partial update into the user's preferences and
// persists the result.
func (s *NotificationService) UpdateSettings(ctx context.Context, user *models.User, update models.NotificationSettingsUpdate) (models.Notifications, error) {
	prefs := update.Apply(models.ResolveNotifications(user.Notifications))
	if err := s.users.SetNotifications(ctx, user.ID, prefs); err != nil {
		return models.Notifications{}, err
	}
	user.Notifications = &prefs
	return prefs, nil
}

// StartScheduler runs one sweep shortly after startup, then one per
// interval, until ctx is cancelled.
func (s *NotificationService) StartScheduler(ctx context.Context, initialDelay, interval time.Duration) {
	go func() {
		select {
		case <-time.After(initialDelay):
		case <-ctx.Done():
			return
		}
		s.sweepOnce(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweepOnce(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *NotificationService) sweepOnce(ctx context.Context) {
	res, err := s.RunDueTaskSweep(ctx, time.Now())
	if err != nil {
		log.Printf("[notify][sweep] scheduled run failed: %v", err)
		return
	}
	log.Printf("[notify][sweep] scheduled run done, %d tasks considered", res.TasksConsidered)
}

// sendBounded runs send but gives up after sendTimeout. The abandoned send
// keeps running in its goroutine; gomail has no cancellable API.
func sendBounded(send func() error) error {
	done := make(chan error, 1)
	go func() { done <- send() }()
	select {
	case err := <-done:
		return err
	case <-time.After(sendTimeout):
		return errSendTimeout
	}
}
