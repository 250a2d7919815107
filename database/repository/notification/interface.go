package notificationRepo

import (
	"context"
	"time"

	"github.com/pr4shxnt/ecobin-backend/models"
)

// NotificationRepository persists the audit log of delivery attempts.
// Records are append-only; the only post-creation mutation is MarkClicked.
type NotificationRepository interface {
	Insert(ctx context.Context, record *models.PushNotification) error
	HistoryForAddress(ctx context.Context, zipCode, city string, limit int64) ([]models.PushNotification, error)
	StatsByType(ctx context.Context) ([]models.NotificationTypeStats, error)
	MarkClicked(ctx context.Context, id string, at time.Time) error
	CountBySchedule(ctx context.Context, scheduleID string) (int64, error)
}
