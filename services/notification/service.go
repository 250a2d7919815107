package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "github.com/pr4shxnt/ecobin-backend/database/repository/notification"
	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPushService is the production implementation of PushService.
type DefaultPushService struct {
	Schedules scheduleRepo.ScheduleRepository
	Records   notificationRepo.NotificationRepository
	Gateway   DeliveryGateway
	Logger    *zap.Logger
}

// NewDefaultPushService wires the reminder engine with its two stores and the
// delivery gateway.
func NewDefaultPushService(
	schedules scheduleRepo.ScheduleRepository,
	records notificationRepo.NotificationRepository,
	gateway DeliveryGateway,
	logger *zap.Logger,
) (*DefaultPushService, error) {
	if schedules == nil || records == nil || gateway == nil {
		return nil, fmt.Errorf("push service initialization error: schedule repo, record repo and gateway are required")
	}
	if logger == nil {
		logger = zap.L()
	}
	return &DefaultPushService{
		Schedules: schedules,
		Records:   records,
		Gateway:   gateway,
		Logger:    logger,
	}, nil
}

// RunDueReminders processes every due schedule. All address fan-outs for a
// schedule complete (success or recorded failure) before that schedule's
// due date is advanced. Advancement is unconditional: it happens regardless
// of per-address outcomes, so a permanently failing address is not retried
// before the next cycle.
func (s *DefaultPushService) RunDueReminders(ctx context.Context) ([]DispatchResult, error) {
	runTime := time.Now()

	due, err := s.Schedules.FindDue(ctx, runTime)
	if err != nil {
		return nil, fmt.Errorf("RunDueReminders: failed to select due schedules: %w", err)
	}

	results := make([]DispatchResult, 0, len(due))
	for _, schedule := range due {
		title := fmt.Sprintf("Waste Collection Reminder - %s", schedule.ScheduleName)
		body := fmt.Sprintf("Your waste collection is scheduled for %s at %s. Please keep your waste ready.",
			schedule.CollectionDay, schedule.CollectionTime)
		data := map[string]string{
			models.DataKeyScheduleID:     schedule.ID,
			models.DataKeyCollectionDay:  schedule.CollectionDay,
			models.DataKeyCollectionTime: schedule.CollectionTime,
		}

		delivered := 0
		for _, address := range schedule.TargetAddresses {
			res := s.SendToAddress(ctx, address, title, body, data, schedule.ID, schedule.CreatedBy, models.NotificationTypeWasteReminder)
			if res.Success {
				delivered++
			}
			results = append(results, res)
		}

		if len(schedule.TargetAddresses) > 0 && delivered == 0 {
			s.Logger.Warn("RunDueReminders: every delivery failed for schedule; advancing anyway",
				zap.String("scheduleId", schedule.ID),
				zap.String("zone", schedule.Zone))
		}

		next := runTime.AddDate(0, 0, schedule.ReminderFrequency)
		if err := s.Schedules.AdvanceNotificationDates(ctx, schedule.ID, runTime, next); err != nil {
			s.Logger.Error("RunDueReminders: failed to advance notification dates",
				zap.String("scheduleId", schedule.ID), zap.Error(err))
		}
	}

	return results, nil
}

// SendToAddress is the shared per-address primitive: it attempts delivery,
// then persists one notification record capturing the outcome. Failures,
// including panics in the gateway, are converted into failed results.
func (s *DefaultPushService) SendToAddress(
	ctx context.Context,
	address models.Address,
	title, body string,
	data map[string]string,
	scheduleID, adminID, notifType string,
) DispatchResult {
	record := &models.PushNotification{
		ID:              uuid.NewString(),
		TargetAddress:   address,
		Title:           title,
		Body:            body,
		Type:            notifType,
		Data:            data,
		WasteScheduleID: scheduleID,
		SentBy:          adminID,
		CreatedAt:       time.Now(),
	}

	if err := s.deliver(ctx, address, title, body, data); err != nil {
		record.FailureReason = err.Error()
		s.Logger.Warn("SendToAddress: delivery failed",
			zap.String("city", address.City), zap.String("zipCode", address.ZipCode), zap.Error(err))
	} else {
		now := time.Now()
		record.Sent = true
		record.SentAt = &now
		record.Delivered = true
		record.DeliveredAt = &now
	}

	if err := s.Records.Insert(ctx, record); err != nil {
		s.Logger.Error("SendToAddress: failed to persist notification record", zap.Error(err))
		return DispatchResult{
			Address:    address,
			ScheduleID: scheduleID,
			Error:      fmt.Sprintf("failed to record notification: %v", err),
		}
	}

	return DispatchResult{
		Address:        address,
		Success:        record.Delivered,
		NotificationID: record.ID,
		ScheduleID:     scheduleID,
		Error:          record.FailureReason,
	}
}

// deliver invokes the gateway, converting a panic into an error so one bad
// address cannot abort the batch.
func (s *DefaultPushService) deliver(ctx context.Context, address models.Address, title, body string, data map[string]string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("delivery gateway panic: %v", r)
		}
	}()
	return s.Gateway.Deliver(ctx, address, title, body, data)
}

// DispatchManual pushes to an arbitrary address list. The due-date gate and
// schedule bookkeeping are bypassed entirely.
func (s *DefaultPushService) DispatchManual(
	ctx context.Context,
	addresses []models.Address,
	title, body, notifType string,
	data map[string]string,
	adminID string,
) ([]DispatchResult, error) {
	if len(addresses) == 0 {
		return nil, ValidationError{Reason: "at least one address is required"}
	}
	if title == "" || body == "" {
		return nil, ValidationError{Reason: "title and body are required"}
	}
	if notifType == "" {
		notifType = models.NotificationTypeWasteReminder
	}
	if !models.IsValidNotificationType(notifType) {
		return nil, ValidationError{Reason: fmt.Sprintf("unknown notification type: %s", notifType)}
	}

	results := make([]DispatchResult, 0, len(addresses))
	for _, address := range addresses {
		results = append(results, s.SendToAddress(ctx, address, title, body, data, "", adminID, notifType))
	}
	return results, nil
}

func (s *DefaultPushService) History(ctx context.Context, address models.Address, limit int64) ([]models.PushNotification, error) {
	if address.ZipCode == "" || address.City == "" {
		return nil, ValidationError{Reason: "address zipCode and city are required"}
	}
	return s.Records.HistoryForAddress(ctx, address.ZipCode, address.City, limit)
}

func (s *DefaultPushService) Stats(ctx context.Context) ([]models.NotificationTypeStats, error) {
	return s.Records.StatsByType(ctx)
}

func (s *DefaultPushService) CountForSchedule(ctx context.Context, scheduleID string) (int64, error) {
	if scheduleID == "" {
		return 0, ValidationError{Reason: "schedule id is required"}
	}
	return s.Records.CountBySchedule(ctx, scheduleID)
}

func (s *DefaultPushService) MarkClicked(ctx context.Context, id string) error {
	if id == "" {
		return ValidationError{Reason: "notification id is required"}
	}
	if err := s.Records.MarkClicked(ctx, id, time.Now()); err != nil {
		if err == notificationRepo.ErrNotificationNotFound {
			return NotFoundError{Resource: "notification", ID: id}
		}
		return err
	}
	return nil
}
