package notification

import (
	"context"
	"fmt"
	"time"

	subscriptionRepo "github.com/pr4shxnt/ecobin-backend/database/repository/subscription"
	"github.com/pr4shxnt/ecobin-backend/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DeliveryGateway abstracts the push-delivery transport. A nil return means
// the notification was accepted by at least one endpoint.
type DeliveryGateway interface {
	Deliver(ctx context.Context, address models.Address, title, body string, data map[string]string) error
}

// FCMGateway delivers through Firebase Cloud Messaging. It resolves the
// target address to registered device tokens by zip code and city.
type FCMGateway struct {
	Client  *messaging.Client
	Subs    subscriptionRepo.SubscriptionRepository
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewFCMGateway constructs an FCM-backed delivery gateway.
func NewFCMGateway(client *messaging.Client, subs subscriptionRepo.SubscriptionRepository, timeout time.Duration, logger *zap.Logger) *FCMGateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FCMGateway{Client: client, Subs: subs, Timeout: timeout, Logger: logger}
}

// Deliver sends the message to every active registration in the target area.
// Matching the original system's behavior, an area with zero registered
// devices counts as a successful broadcast; this is deliberate, see DESIGN.md.
func (g *FCMGateway) Deliver(ctx context.Context, address models.Address, title, body string, data map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	subs, err := g.Subs.FindActiveByArea(ctx, address.ZipCode, address.City)
	if err != nil {
		return fmt.Errorf("FCMGateway: failed to resolve subscriptions: %w", err)
	}
	if len(subs) == 0 {
		g.Logger.Warn("FCMGateway: no registered devices for area, treating broadcast as success",
			zap.String("city", address.City), zap.String("zipCode", address.ZipCode))
		return nil
	}

	delivered := 0
	for _, sub := range subs {
		msg := &messaging.Message{
			Token: sub.Token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}
		if _, err := g.Client.Send(ctx, msg); err != nil {
			if messaging.IsRegistrationTokenNotRegistered(err) {
				if derr := g.Subs.DeactivateToken(ctx, sub.Token); derr != nil {
					g.Logger.Warn("FCMGateway: failed to deactivate stale token", zap.Error(derr))
				}
			}
			g.Logger.Warn("FCMGateway: send failed", zap.String("platform", sub.Platform), zap.Error(err))
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return fmt.Errorf("FCMGateway: no device accepted delivery for %s, %s", address.City, address.State)
	}
	return nil
}

// LogGateway is the simulated delivery transport: it logs the broadcast and
// always reports success. Used when no Firebase credentials are configured.
type LogGateway struct {
	Logger *zap.Logger
}

// NewLogGateway constructs a log-only delivery gateway.
func NewLogGateway(logger *zap.Logger) *LogGateway {
	return &LogGateway{Logger: logger}
}

func (g *LogGateway) Deliver(ctx context.Context, address models.Address, title, body string, data map[string]string) error {
	g.Logger.Info("Broadcasting to area",
		zap.String("city", address.City),
		zap.String("state", address.State),
		zap.String("title", title),
		zap.String("body", body),
		zap.Any("data", data),
	)
	return nil
}
