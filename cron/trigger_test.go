package cron

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pr4shxnt/ecobin-backend/models"
	"github.com/pr4shxnt/ecobin-backend/services/notification"
)

// blockingPushService holds RunDueReminders until release is closed.
type blockingPushService struct {
	started chan struct{}
	release chan struct{}
	runs    int
	mu      sync.Mutex
}

func (s *blockingPushService) RunDueReminders(ctx context.Context) ([]notification.DispatchResult, error) {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	close(s.started)
	<-s.release
	return nil, nil
}

func (s *blockingPushService) DispatchManual(ctx context.Context, addresses []models.Address, title, body, notifType string, data map[string]string, adminID string) ([]notification.DispatchResult, error) {
	return nil, nil
}

func (s *blockingPushService) History(ctx context.Context, address models.Address, limit int64) ([]models.PushNotification, error) {
	return nil, nil
}

func (s *blockingPushService) Stats(ctx context.Context) ([]models.NotificationTypeStats, error) {
	return nil, nil
}

func (s *blockingPushService) MarkClicked(ctx context.Context, id string) error { return nil }

func (s *blockingPushService) CountForSchedule(ctx context.Context, scheduleID string) (int64, error) {
	return 0, nil
}

func TestTriggerRejectsConcurrentRun(t *testing.T) {
	svc := &blockingPushService{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	trigger := NewReminderTrigger(svc)

	done := make(chan error, 1)
	go func() {
		_, err := trigger.Run(context.Background())
		done <- err
	}()

	<-svc.started

	// A second invocation while the first holds the lock must bail out.
	if _, err := trigger.Run(context.Background()); !errors.Is(err, ErrRunInProgress) {
		t.Fatalf("expected ErrRunInProgress, got %v", err)
	}

	close(svc.release)
	if err := <-done; err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// Once the first run finishes, the trigger accepts new runs.
	svc.mu.Lock()
	runs := svc.runs
	svc.mu.Unlock()
	if runs != 1 {
		t.Fatalf("expected exactly one engine run, got %d", runs)
	}
}

func TestTriggerRunsSequentially(t *testing.T) {
	svc := &blockingPushService{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	close(svc.release) // never block
	trigger := NewReminderTrigger(svc)

	for i := 0; i < 3; i++ {
		svc.started = make(chan struct{})
		if _, err := trigger.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.runs != 3 {
		t.Fatalf("expected 3 sequential runs, got %d", svc.runs)
	}
}
