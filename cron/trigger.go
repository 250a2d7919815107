package cron

import (
	"context"
	"errors"
	"sync"

	"github.com/pr4shxnt/ecobin-backend/services/notification"
)

// ErrRunInProgress is returned when a reminder run is already in flight.
// The engine itself does not serialize concurrent runs; two overlapping runs
// would both see the same due schedules and double-notify every address, so
// every trigger path goes through this guard.
var ErrRunInProgress = errors.New("a reminder run is already in progress")

// ReminderTrigger is the single-flight gate in front of the reminder engine.
// Both the scheduled worker and the on-demand operator endpoint share one
// instance.
type ReminderTrigger struct {
	mu      sync.Mutex
	service notification.PushService
}

// NewReminderTrigger wraps the push service with a single-flight guard.
func NewReminderTrigger(service notification.PushService) *ReminderTrigger {
	return &ReminderTrigger{service: service}
}

// Run executes one reminder batch. A concurrent invocation returns
// ErrRunInProgress instead of waiting.
func (t *ReminderTrigger) Run(ctx context.Context) ([]notification.DispatchResult, error) {
	if !t.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer t.mu.Unlock()

	return t.service.RunDueReminders(ctx)
}
