package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"

	"go.uber.org/zap"
)

type stubRepo struct {
	created *models.WasteSchedule
	total   int64
	items   []models.WasteSchedule
	update  *scheduleRepo.ScheduleUpdate
}

func (r *stubRepo) Create(ctx context.Context, schedule *models.WasteSchedule) error {
	r.created = schedule
	return nil
}

func (r *stubRepo) GetByID(ctx context.Context, id string) (*models.WasteSchedule, error) {
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (r *stubRepo) List(ctx context.Context, filter scheduleRepo.ScheduleFilter, page, limit int64) ([]models.WasteSchedule, int64, error) {
	return r.items, r.total, nil
}

func (r *stubRepo) Update(ctx context.Context, id string, update scheduleRepo.ScheduleUpdate) (*models.WasteSchedule, error) {
	r.update = &update
	return &models.WasteSchedule{ID: id}, nil
}

func (r *stubRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *stubRepo) FindDue(ctx context.Context, now time.Time) ([]models.WasteSchedule, error) {
	return nil, nil
}

func (r *stubRepo) AdvanceNotificationDates(ctx context.Context, id string, lastSent, next time.Time) error {
	return nil
}

func (r *stubRepo) AppendCollectionEvent(ctx context.Context, id string, event models.CollectionEvent) error {
	return nil
}

func (r *stubRepo) GetActiveByZone(ctx context.Context, zone string) (*models.WasteSchedule, error) {
	return nil, scheduleRepo.ErrScheduleNotFound
}

func (r *stubRepo) ListActive(ctx context.Context) ([]models.WasteSchedule, error) {
	return nil, nil
}

func validRequest() CreateScheduleRequest {
	return CreateScheduleRequest{
		ScheduleName:   "Monday Organics",
		CollectionDay:  "monday",
		CollectionTime: "08:00",
		Zone:           "north",
		TargetAddresses: []models.Address{
			{Street: "12 Elm St", City: "Springfield", State: "IL", ZipCode: "10001"},
		},
	}
}

func intPtr(v int) *int    { return &v }
func strPtr(v string) *string { return &v }

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &stubRepo{}
	svc := &DefaultScheduleService{Repo: repo, Logger: zap.NewNop()}

	created, err := svc.Create(context.Background(), validRequest(), "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ReminderFrequency != models.DefaultReminderFrequency {
		t.Errorf("expected default frequency %d, got %d", models.DefaultReminderFrequency, created.ReminderFrequency)
	}
	if !created.PushNotificationEnabled {
		t.Error("push notifications must default to enabled")
	}
	if created.Status != models.ScheduleStatusActive {
		t.Errorf("expected status active, got %q", created.Status)
	}
	if created.CreatedBy != "admin-1" {
		t.Errorf("expected createdBy admin-1, got %q", created.CreatedBy)
	}
	if repo.created == nil {
		t.Fatal("schedule was not persisted")
	}
}

func TestCreateSetsFirstDueDate(t *testing.T) {
	repo := &stubRepo{}
	svc := &DefaultScheduleService{Repo: repo, Logger: zap.NewNop()}

	req := validRequest()
	req.ReminderFrequency = intPtr(3)

	before := time.Now()
	created, err := svc.Create(context.Background(), req, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	after := time.Now()

	if created.NextNotificationDate == nil {
		t.Fatal("a new schedule must carry its first due date")
	}
	lo := before.AddDate(0, 0, 3)
	hi := after.AddDate(0, 0, 3)
	if created.NextNotificationDate.Before(lo) || created.NextNotificationDate.After(hi) {
		t.Errorf("first due date %v outside expected window [%v, %v]", created.NextNotificationDate, lo, hi)
	}
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateScheduleRequest)
	}{
		{"missing name", func(r *CreateScheduleRequest) { r.ScheduleName = "" }},
		{"bad day", func(r *CreateScheduleRequest) { r.CollectionDay = "someday" }},
		{"no addresses", func(r *CreateScheduleRequest) { r.TargetAddresses = nil }},
		{"incomplete address", func(r *CreateScheduleRequest) {
			r.TargetAddresses = []models.Address{{Street: "12 Elm St"}}
		}},
		{"frequency too low", func(r *CreateScheduleRequest) { r.ReminderFrequency = intPtr(0) }},
		{"frequency too high", func(r *CreateScheduleRequest) { r.ReminderFrequency = intPtr(8) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := &DefaultScheduleService{Repo: repo, Logger: zap.NewNop()}

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req, "admin-1")
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if repo.created != nil {
				t.Fatal("invalid schedule must not be persisted")
			}
		})
	}
}

func TestUpdateValidation(t *testing.T) {
	cases := []struct {
		name   string
		update scheduleRepo.ScheduleUpdate
	}{
		{"bad day", scheduleRepo.ScheduleUpdate{CollectionDay: strPtr("someday")}},
		{"bad status", scheduleRepo.ScheduleUpdate{Status: strPtr("archived")}},
		{"bad frequency", scheduleRepo.ScheduleUpdate{ReminderFrequency: intPtr(9)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := &DefaultScheduleService{Repo: repo, Logger: zap.NewNop()}

			_, err := svc.Update(context.Background(), "s1", tc.update)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if repo.update != nil {
				t.Fatal("invalid update must not reach the repository")
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int64
		limit      int64
		wantPage   int64
		wantPages  int64
		wantPerPag int64
	}{
		{"exact pages", 20, 1, 10, 1, 2, 10},
		{"partial last page", 25, 2, 10, 2, 3, 10},
		{"defaults applied", 5, 0, 0, 1, 1, 10},
		{"empty", 0, 1, 10, 1, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{total: tc.total}
			svc := &DefaultScheduleService{Repo: repo, Logger: zap.NewNop()}

			_, pagination, err := svc.List(context.Background(), scheduleRepo.ScheduleFilter{}, tc.page, tc.limit)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if pagination.CurrentPage != tc.wantPage {
				t.Errorf("currentPage = %d, want %d", pagination.CurrentPage, tc.wantPage)
			}
			if pagination.TotalPages != tc.wantPages {
				t.Errorf("totalPages = %d, want %d", pagination.TotalPages, tc.wantPages)
			}
			if pagination.TotalItems != tc.total {
				t.Errorf("totalItems = %d, want %d", pagination.TotalItems, tc.total)
			}
			if pagination.ItemsPerPage != tc.wantPerPag {
				t.Errorf("itemsPerPage = %d, want %d", pagination.ItemsPerPage, tc.wantPerPag)
			}
		})
	}
}

func TestUpdateCollectionStatusRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultScheduleService{Repo: &stubRepo{}, Logger: zap.NewNop()}

	err := svc.UpdateCollectionStatus(context.Background(), "s1", "vanished", "", "admin-1")
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
