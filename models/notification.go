package models

import "time"

// Notification types.
const (
	NotificationTypeWasteReminder    = "waste_reminder"
	NotificationTypeScheduleUpdate   = "schedule_update"
	NotificationTypeCollectionStatus = "collection_status"
	NotificationTypeSystem           = "system"
	NotificationTypeEmergency        = "emergency"
)

// Documented keys for the PushNotification data payload.
const (
	DataKeyScheduleID     = "scheduleId"
	DataKeyCollectionDay  = "collectionDay"
	DataKeyCollectionTime = "collectionTime"
)

var notificationTypes = map[string]bool{
	NotificationTypeWasteReminder:    true,
	NotificationTypeScheduleUpdate:   true,
	NotificationTypeCollectionStatus: true,
	NotificationTypeSystem:           true,
	NotificationTypeEmergency:        true,
}

// PushNotification is the persisted record of one attempted delivery to one
// address. Records are immutable after creation except for the clicked flag.
type PushNotification struct {
	ID              string            `bson:"id" json:"id"`
	TargetAddress   Address           `bson:"targetAddress" json:"targetAddress"`
	Title           string            `bson:"title" json:"title"`
	Body            string            `bson:"body" json:"body"`
	Type            string            `bson:"type" json:"type"`
	Data            map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Sent            bool              `bson:"sent" json:"sent"`
	SentAt          *time.Time        `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	Delivered       bool              `bson:"delivered" json:"delivered"`
	DeliveredAt     *time.Time        `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	Clicked         bool              `bson:"clicked" json:"clicked"`
	ClickedAt       *time.Time        `bson:"clickedAt,omitempty" json:"clickedAt,omitempty"`
	FailureReason   string            `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	WasteScheduleID string            `bson:"wasteScheduleId,omitempty" json:"wasteScheduleId,omitempty"`
	SentBy          string            `bson:"sentBy,omitempty" json:"sentBy,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
}

// NotificationTypeStats aggregates delivery counters for one notification type.
type NotificationTypeStats struct {
	Type      string `bson:"_id" json:"type"`
	Count     int64  `bson:"count" json:"count"`
	Sent      int64  `bson:"sent" json:"sent"`
	Delivered int64  `bson:"delivered" json:"delivered"`
	Clicked   int64  `bson:"clicked" json:"clicked"`
}

// IsValidNotificationType reports whether t is a known notification type.
func IsValidNotificationType(t string) bool {
	return notificationTypes[t]
}
