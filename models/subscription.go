package models

import "time"

// PushSubscription registers one device token for push delivery at an address.
// The delivery gateway resolves notification targets by matching the
// subscription address (zip code + city) against the target address.
type PushSubscription struct {
	ID        string    `bson:"id" json:"id"`
	TenantID  string    `bson:"tenantId,omitempty" json:"tenantId,omitempty"`
	Token     string    `bson:"token" json:"token"`
	Platform  string    `bson:"platform" json:"platform"` // ios, android, web
	Address   Address   `bson:"address" json:"address"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
