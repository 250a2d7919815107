package notification

import (
	"context"

	"github.com/pr4shxnt/ecobin-backend/models"
)

// DispatchResult is the per-address outcome of one delivery attempt.
type DispatchResult struct {
	Address        models.Address `json:"address"`
	Success        bool           `json:"success"`
	NotificationID string         `json:"notificationId,omitempty"`
	ScheduleID     string         `json:"scheduleId,omitempty"`
	Error          string         `json:"error,omitempty"`
}

// PushService orchestrates reminder scheduling and notification dispatch.
type PushService interface {
	// RunDueReminders selects every due schedule, fans out one notification
	// per target address, records each attempt, and advances each schedule's
	// notification dates. Per-address failures are recorded, never raised.
	RunDueReminders(ctx context.Context) ([]DispatchResult, error)

	// DispatchManual pushes a notification to an arbitrary address list,
	// bypassing the due-date gate. No schedule is mutated. An empty
	// notifType defaults to waste_reminder.
	DispatchManual(ctx context.Context, addresses []models.Address, title, body, notifType string, data map[string]string, adminID string) ([]DispatchResult, error)

	// History returns the notification records matching the address (zip code
	// and city), newest first, capped at limit (default 50).
	History(ctx context.Context, address models.Address, limit int64) ([]models.PushNotification, error)

	// Stats aggregates delivery counters per notification type.
	Stats(ctx context.Context) ([]models.NotificationTypeStats, error)

	// CountForSchedule returns how many notifications were recorded for the
	// given schedule.
	CountForSchedule(ctx context.Context, scheduleID string) (int64, error)

	// MarkClicked records a click on a previously delivered notification.
	MarkClicked(ctx context.Context, id string) error
}
