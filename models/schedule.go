package models

import (
	"fmt"
	"time"
)

// Schedule lifecycle states.
const (
	ScheduleStatusActive    = "active"
	ScheduleStatusInactive  = "inactive"
	ScheduleStatusSuspended = "suspended"
)

// Collection event states.
const (
	CollectionStatusScheduled  = "scheduled"
	CollectionStatusInProgress = "in-progress"
	CollectionStatusCompleted  = "completed"
	CollectionStatusMissed     = "missed"
	CollectionStatusCancelled  = "cancelled"
)

// Reminder frequency bounds, in days.
const (
	MinReminderFrequency     = 1
	MaxReminderFrequency     = 7
	DefaultReminderFrequency = 2
)

var collectionDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

var scheduleStatuses = map[string]bool{
	ScheduleStatusActive:    true,
	ScheduleStatusInactive:  true,
	ScheduleStatusSuspended: true,
}

var collectionStatuses = map[string]bool{
	CollectionStatusScheduled:  true,
	CollectionStatusInProgress: true,
	CollectionStatusCompleted:  true,
	CollectionStatusMissed:     true,
	CollectionStatusCancelled:  true,
}

// CollectionEvent is one append-only entry in a schedule's collection history.
type CollectionEvent struct {
	Date        time.Time `bson:"date" json:"date"`
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CompletedBy string    `bson:"completedBy,omitempty" json:"completedBy,omitempty"`
}

// WasteSchedule is one recurring collection arrangement for a zone.
type WasteSchedule struct {
	ID                      string            `bson:"id" json:"id"`
	ScheduleName            string            `bson:"scheduleName" json:"scheduleName"`
	CollectionDay           string            `bson:"collectionDay" json:"collectionDay"`
	CollectionTime          string            `bson:"collectionTime" json:"collectionTime"`
	Zone                    string            `bson:"zone" json:"zone"`
	TargetAddresses         []Address         `bson:"targetAddresses" json:"targetAddresses"`
	Status                  string            `bson:"status" json:"status"`
	PushNotificationEnabled bool              `bson:"pushNotificationEnabled" json:"pushNotificationEnabled"`
	ReminderFrequency       int               `bson:"reminderFrequency" json:"reminderFrequency"`
	LastNotificationSent    *time.Time        `bson:"lastNotificationSent,omitempty" json:"lastNotificationSent,omitempty"`
	NextNotificationDate    *time.Time        `bson:"nextNotificationDate,omitempty" json:"nextNotificationDate,omitempty"`
	CollectionHistory       []CollectionEvent `bson:"collectionHistory" json:"collectionHistory"`
	CreatedBy               string            `bson:"createdBy" json:"createdBy"`
	CreatedAt               time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt               time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// IsValidCollectionDay reports whether day is one of the seven lowercase weekdays.
func IsValidCollectionDay(day string) bool {
	return collectionDays[day]
}

// IsValidScheduleStatus reports whether status is a known schedule lifecycle state.
func IsValidScheduleStatus(status string) bool {
	return scheduleStatuses[status]
}

// IsValidCollectionStatus reports whether status is a known collection event state.
func IsValidCollectionStatus(status string) bool {
	return collectionStatuses[status]
}

// Validate checks the schedule's enum fields and frequency bounds.
func (s *WasteSchedule) Validate() error {
	if s.ScheduleName == "" || s.Zone == "" || s.CollectionTime == "" {
		return fmt.Errorf("scheduleName, zone and collectionTime are required")
	}
	if !IsValidCollectionDay(s.CollectionDay) {
		return fmt.Errorf("invalid collection day %q", s.CollectionDay)
	}
	if !IsValidScheduleStatus(s.Status) {
		return fmt.Errorf("invalid schedule status %q", s.Status)
	}
	if s.ReminderFrequency < MinReminderFrequency || s.ReminderFrequency > MaxReminderFrequency {
		return fmt.Errorf("reminder frequency must be between %d and %d days", MinReminderFrequency, MaxReminderFrequency)
	}
	if len(s.TargetAddresses) == 0 {
		return fmt.Errorf("at least one target address is required")
	}
	for i, addr := range s.TargetAddresses {
		if !addr.IsComplete() {
			return fmt.Errorf("target address %d is missing required fields", i)
		}
	}
	return nil
}
