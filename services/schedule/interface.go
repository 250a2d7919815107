package schedule

import (
	"context"

	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"
)

// CreateScheduleRequest carries the operator input for a new schedule.
type CreateScheduleRequest struct {
	ScheduleName            string           `json:"scheduleName"`
	CollectionDay           string           `json:"collectionDay"`
	CollectionTime          string           `json:"collectionTime"`
	Zone                    string           `json:"zone"`
	TargetAddresses         []models.Address `json:"targetAddresses"`
	ReminderFrequency       *int             `json:"reminderFrequency,omitempty"`
	PushNotificationEnabled *bool            `json:"pushNotificationEnabled,omitempty"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int64 `json:"itemsPerPage"`
}

// ScheduleService manages waste-collection schedules.
type ScheduleService interface {
	Create(ctx context.Context, req CreateScheduleRequest, adminID string) (*models.WasteSchedule, error)
	Get(ctx context.Context, id string) (*models.WasteSchedule, error)
	List(ctx context.Context, filter scheduleRepo.ScheduleFilter, page, limit int64) ([]models.WasteSchedule, Pagination, error)
	Update(ctx context.Context, id string, update scheduleRepo.ScheduleUpdate) (*models.WasteSchedule, error)
	Delete(ctx context.Context, id string) error
	UpdateCollectionStatus(ctx context.Context, scheduleID string, status, notes, adminID string) error
}
