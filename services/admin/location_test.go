package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"

	"go.uber.org/zap"
)

type fakeScheduleSource struct {
	active []models.WasteSchedule
	events []models.CollectionEvent
}

func (f *fakeScheduleSource) Create(ctx context.Context, schedule *models.WasteSchedule) error {
	return nil
}

func (f *fakeScheduleSource) GetByID(ctx context.Context, id string) (*models.WasteSchedule, error) {
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleSource) List(ctx context.Context, filter scheduleRepo.ScheduleFilter, page, limit int64) ([]models.WasteSchedule, int64, error) {
	return nil, 0, nil
}

func (f *fakeScheduleSource) Update(ctx context.Context, id string, update scheduleRepo.ScheduleUpdate) (*models.WasteSchedule, error) {
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleSource) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeScheduleSource) FindDue(ctx context.Context, now time.Time) ([]models.WasteSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleSource) AdvanceNotificationDates(ctx context.Context, id string, lastSent, next time.Time) error {
	return nil
}

func (f *fakeScheduleSource) AppendCollectionEvent(ctx context.Context, id string, event models.CollectionEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeScheduleSource) GetActiveByZone(ctx context.Context, zone string) (*models.WasteSchedule, error) {
	for i := range f.active {
		if f.active[i].Zone == zone {
			return &f.active[i], nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (f *fakeScheduleSource) ListActive(ctx context.Context) ([]models.WasteSchedule, error) {
	return f.active, nil
}

func onlineCollector(id, zone string) *models.Admin {
	return &models.Admin{
		ID:            id,
		FirstName:     "Bibek",
		EmailAddress:  id + "@ecobin.dev",
		Role:          models.AdminRoleCollector,
		AssignedZones: []string{zone},
		CurrentLocation: models.AdminLocation{
			IsOnline: true,
		},
	}
}

func TestRouteForZone(t *testing.T) {
	admins := newFakeAdminRepo()
	collector := onlineCollector("col-1", "north")
	admins.byEmail[collector.EmailAddress] = collector

	schedules := &fakeScheduleSource{active: []models.WasteSchedule{{
		ID:             "s1",
		ScheduleName:   "Monday Organics",
		CollectionDay:  "monday",
		CollectionTime: "08:00",
		Zone:           "north",
		TargetAddresses: []models.Address{
			{Street: "12 Elm St", City: "Springfield", State: "IL", ZipCode: "10001"},
			{Street: "14 Elm St", City: "Springfield", State: "IL", ZipCode: "10001"},
		},
	}}}

	svc := &LocationService{Admins: admins, Schedules: schedules, Logger: zap.NewNop()}

	route, err := svc.RouteForZone(context.Background(), "north")
	if err != nil {
		t.Fatalf("RouteForZone: %v", err)
	}
	if route.ScheduleID != "s1" || route.Zone != "north" {
		t.Errorf("unexpected route identity: %+v", route)
	}
	if len(route.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(route.Stops))
	}
	if route.Stops[0].Address.Street != "12 Elm St" {
		t.Errorf("stops must keep the schedule's address order")
	}
	if len(route.Collectors) != 1 || route.Collectors[0].ID != "col-1" {
		t.Errorf("expected the online zone collector, got %+v", route.Collectors)
	}
}

func TestRouteForZoneUnknownZone(t *testing.T) {
	svc := &LocationService{Admins: newFakeAdminRepo(), Schedules: &fakeScheduleSource{}, Logger: zap.NewNop()}

	if _, err := svc.RouteForZone(context.Background(), "nowhere"); !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
	if _, err := svc.RouteForZone(context.Background(), ""); err == nil {
		t.Fatal("expected an error for an empty zone")
	}
}

func TestAllRoutesAssemblesEveryActiveZone(t *testing.T) {
	admins := newFakeAdminRepo()
	schedules := &fakeScheduleSource{active: []models.WasteSchedule{
		{ID: "s1", Zone: "north", TargetAddresses: []models.Address{{Street: "1", City: "c", State: "s", ZipCode: "z"}}},
		{ID: "s2", Zone: "south", TargetAddresses: []models.Address{{Street: "2", City: "c", State: "s", ZipCode: "z"}}},
	}}
	svc := &LocationService{Admins: admins, Schedules: schedules, Logger: zap.NewNop()}

	routes, err := svc.AllRoutes(context.Background())
	if err != nil {
		t.Fatalf("AllRoutes: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
}

func TestUpdateCollectionStatus(t *testing.T) {
	schedules := &fakeScheduleSource{}
	svc := &LocationService{Admins: newFakeAdminRepo(), Schedules: schedules, Logger: zap.NewNop()}

	err := svc.UpdateCollectionStatus(context.Background(), "admin-1", CollectionStatusRequest{
		ScheduleID: "s1",
		Status:     models.CollectionStatusCompleted,
		Notes:      "all bins picked up",
	})
	if err != nil {
		t.Fatalf("UpdateCollectionStatus: %v", err)
	}
	if len(schedules.events) != 1 {
		t.Fatalf("expected 1 appended event, got %d", len(schedules.events))
	}
	if schedules.events[0].CompletedBy != "admin-1" {
		t.Errorf("completedBy = %q, want admin-1", schedules.events[0].CompletedBy)
	}

	t.Run("invalid status", func(t *testing.T) {
		err := svc.UpdateCollectionStatus(context.Background(), "admin-1", CollectionStatusRequest{
			ScheduleID: "s1",
			Status:     "vanished",
		})
		if err == nil {
			t.Fatal("expected an error for an unknown status")
		}
	})

	t.Run("missing schedule id", func(t *testing.T) {
		err := svc.UpdateCollectionStatus(context.Background(), "admin-1", CollectionStatusRequest{
			Status: models.CollectionStatusMissed,
		})
		if err == nil {
			t.Fatal("expected an error for a missing schedule id")
		}
	})
}
