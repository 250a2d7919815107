package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pr4shxnt/ecobin-backend/models"
	"github.com/pr4shxnt/ecobin-backend/services/notification"

	"github.com/gin-gonic/gin"
)

// capturingPushService records the arguments of the last manual dispatch.
type capturingPushService struct {
	addresses []models.Address
	title     string
	body      string
	notifType string
}

func (s *capturingPushService) RunDueReminders(ctx context.Context) ([]notification.DispatchResult, error) {
	return nil, nil
}

func (s *capturingPushService) DispatchManual(ctx context.Context, addresses []models.Address, title, body, notifType string, data map[string]string, adminID string) ([]notification.DispatchResult, error) {
	s.addresses = addresses
	s.title = title
	s.body = body
	s.notifType = notifType
	results := make([]notification.DispatchResult, len(addresses))
	for i, a := range addresses {
		results[i] = notification.DispatchResult{Address: a, Success: true}
	}
	return results, nil
}

func (s *capturingPushService) History(ctx context.Context, address models.Address, limit int64) ([]models.PushNotification, error) {
	return nil, nil
}

func (s *capturingPushService) Stats(ctx context.Context) ([]models.NotificationTypeStats, error) {
	return nil, nil
}

func (s *capturingPushService) MarkClicked(ctx context.Context, id string) error { return nil }

func (s *capturingPushService) CountForSchedule(ctx context.Context, scheduleID string) (int64, error) {
	return 0, nil
}

func postSend(t *testing.T, svc notification.PushService, payload string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := &NotificationHandler{Service: svc}
	router.POST("/api/admin/notifications/send", handler.Send)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/notifications/send", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSendAcceptsAddressesField(t *testing.T) {
	svc := &capturingPushService{}
	body := `{
		"addresses": [{"street": "12 Elm St", "city": "Springfield", "state": "IL", "zipCode": "10001"}],
		"title": "Pickup moved",
		"body": "Collection moved to 10:00"
	}`

	rec := postSend(t, svc, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(svc.addresses) != 1 {
		t.Fatalf("expected 1 address to reach dispatch, got %d", len(svc.addresses))
	}
	if svc.addresses[0].ZipCode != "10001" || svc.addresses[0].City != "Springfield" {
		t.Errorf("unexpected address: %+v", svc.addresses[0])
	}
	if svc.title != "Pickup moved" || svc.body != "Collection moved to 10:00" {
		t.Errorf("title/body not forwarded: %q / %q", svc.title, svc.body)
	}
}

func TestSendForwardsNotificationType(t *testing.T) {
	svc := &capturingPushService{}
	body := `{
		"addresses": [{"street": "12 Elm St", "city": "Springfield", "state": "IL", "zipCode": "10001"}],
		"title": "Boil water advisory",
		"body": "Collection suspended today",
		"type": "emergency"
	}`

	rec := postSend(t, svc, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.notifType != models.NotificationTypeEmergency {
		t.Errorf("type = %q, want %q", svc.notifType, models.NotificationTypeEmergency)
	}
}
