package scheduleRepo

import (
	"context"
	"time"

	"github.com/pr4shxnt/ecobin-backend/models"
)

// ScheduleFilter narrows schedule listings.
type ScheduleFilter struct {
	Status string
	Zone   string
}

// ScheduleUpdate carries the mutable schedule fields; nil fields are left untouched.
type ScheduleUpdate struct {
	ScheduleName            *string
	CollectionDay           *string
	CollectionTime          *string
	Zone                    *string
	TargetAddresses         *[]models.Address
	Status                  *string
	PushNotificationEnabled *bool
	ReminderFrequency       *int
}

// ScheduleRepository persists waste-collection schedules.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.WasteSchedule) error
	GetByID(ctx context.Context, id string) (*models.WasteSchedule, error)
	List(ctx context.Context, filter ScheduleFilter, page, limit int64) ([]models.WasteSchedule, int64, error)
	Update(ctx context.Context, id string, update ScheduleUpdate) (*models.WasteSchedule, error)
	Delete(ctx context.Context, id string) error

	// FindDue selects active, push-enabled schedules whose next notification
	// date is set and at or before now.
	FindDue(ctx context.Context, now time.Time) ([]models.WasteSchedule, error)

	// AdvanceNotificationDates persists the post-run bookkeeping for one
	// schedule: lastNotificationSent = lastSent, nextNotificationDate = next.
	AdvanceNotificationDates(ctx context.Context, id string, lastSent, next time.Time) error

	// AppendCollectionEvent appends one entry to the collection history.
	// History entries are never mutated or removed.
	AppendCollectionEvent(ctx context.Context, id string, event models.CollectionEvent) error

	GetActiveByZone(ctx context.Context, zone string) (*models.WasteSchedule, error)
	ListActive(ctx context.Context) ([]models.WasteSchedule, error)
}
