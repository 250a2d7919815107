package schedule

import (
	"context"
	"fmt"
	"time"

	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError indicates a malformed schedule request.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// DefaultScheduleService is the production implementation of ScheduleService.
type DefaultScheduleService struct {
	Repo   scheduleRepo.ScheduleRepository
	Logger *zap.Logger
}

// Create validates the request and persists a new schedule. The first
// nextNotificationDate is computed here, at creation time: the reminder
// engine skips schedules whose next date was never set.
func (s *DefaultScheduleService) Create(ctx context.Context, req CreateScheduleRequest, adminID string) (*models.WasteSchedule, error) {
	frequency := models.DefaultReminderFrequency
	if req.ReminderFrequency != nil {
		frequency = *req.ReminderFrequency
	}
	pushEnabled := true
	if req.PushNotificationEnabled != nil {
		pushEnabled = *req.PushNotificationEnabled
	}

	now := time.Now()
	next := now.AddDate(0, 0, frequency)
	sched := &models.WasteSchedule{
		ID:                      uuid.NewString(),
		ScheduleName:            req.ScheduleName,
		CollectionDay:           req.CollectionDay,
		CollectionTime:          req.CollectionTime,
		Zone:                    req.Zone,
		TargetAddresses:         req.TargetAddresses,
		Status:                  models.ScheduleStatusActive,
		PushNotificationEnabled: pushEnabled,
		ReminderFrequency:       frequency,
		NextNotificationDate:    &next,
		CollectionHistory:       []models.CollectionEvent{},
		CreatedBy:               adminID,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := sched.Validate(); err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}

	if err := s.Repo.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *DefaultScheduleService) Get(ctx context.Context, id string) (*models.WasteSchedule, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultScheduleService) List(ctx context.Context, filter scheduleRepo.ScheduleFilter, page, limit int64) ([]models.WasteSchedule, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	schedules, total, err := s.Repo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return schedules, Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}, nil
}

func (s *DefaultScheduleService) Update(ctx context.Context, id string, update scheduleRepo.ScheduleUpdate) (*models.WasteSchedule, error) {
	if update.CollectionDay != nil && !models.IsValidCollectionDay(*update.CollectionDay) {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid collection day %q", *update.CollectionDay)}
	}
	if update.Status != nil && !models.IsValidScheduleStatus(*update.Status) {
		return nil, ValidationError{Reason: fmt.Sprintf("invalid schedule status %q", *update.Status)}
	}
	if update.ReminderFrequency != nil &&
		(*update.ReminderFrequency < models.MinReminderFrequency || *update.ReminderFrequency > models.MaxReminderFrequency) {
		return nil, ValidationError{Reason: fmt.Sprintf("reminder frequency must be between %d and %d days",
			models.MinReminderFrequency, models.MaxReminderFrequency)}
	}
	if update.TargetAddresses != nil {
		for i, addr := range *update.TargetAddresses {
			if !addr.IsComplete() {
				return nil, ValidationError{Reason: fmt.Sprintf("target address %d is missing required fields", i)}
			}
		}
	}

	return s.Repo.Update(ctx, id, update)
}

func (s *DefaultScheduleService) Delete(ctx context.Context, id string) error {
	// Hard delete, matching the original system. Notification records keep a
	// denormalized address copy, so their history stays readable after the
	// schedule is gone.
	return s.Repo.Delete(ctx, id)
}

// UpdateCollectionStatus appends one entry to the schedule's collection
// history. History is append-only; existing entries are never touched.
func (s *DefaultScheduleService) UpdateCollectionStatus(ctx context.Context, scheduleID, status, notes, adminID string) error {
	if !models.IsValidCollectionStatus(status) {
		return ValidationError{Reason: fmt.Sprintf("invalid collection status %q", status)}
	}

	event := models.CollectionEvent{
		Date:        time.Now(),
		Status:      status,
		Notes:       notes,
		CompletedBy: adminID,
	}
	return s.Repo.AppendCollectionEvent(ctx, scheduleID, event)
}
