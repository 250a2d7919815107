package admin

import (
	"context"
	"fmt"
	"time"

	adminRepo "github.com/pr4shxnt/ecobin-backend/database/repository/admin"
	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"

	"go.uber.org/zap"
)

// RouteStop is one address a collector must visit on a route.
type RouteStop struct {
	Address   models.Address `json:"address"`
	Completed bool           `json:"completed"`
}

// ZoneRoute is the assembled collection route for one zone: the stops from the
// zone's active schedule plus the collectors currently online in that zone.
type ZoneRoute struct {
	Zone           string                `json:"zone"`
	ScheduleID     string                `json:"scheduleId"`
	ScheduleName   string                `json:"scheduleName"`
	CollectionDay  string                `json:"collectionDay"`
	CollectionTime string                `json:"collectionTime"`
	Stops          []RouteStop           `json:"stops"`
	Collectors     []models.AdminProfile `json:"collectors"`
}

// CollectionStatusRequest records the outcome of a collection run for a schedule.
type CollectionStatusRequest struct {
	ScheduleID string `json:"scheduleId"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

// LocationService tracks collector positions and assembles zone routes.
type LocationService struct {
	Admins    adminRepo.AdminRepository
	Schedules scheduleRepo.ScheduleRepository
	Logger    *zap.Logger
}

// UpdateLocation stores the collector's current coordinates and marks them online.
func (s *LocationService) UpdateLocation(ctx context.Context, adminID string, coords models.Coordinates) (*models.Admin, error) {
	return s.Admins.SetLocation(ctx, adminID, coords, true)
}

// GetLocation returns the collector's last reported location.
func (s *LocationService) GetLocation(ctx context.Context, adminID string) (*models.AdminLocation, error) {
	account, err := s.Admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return &account.CurrentLocation, nil
}

// GoOffline stops live tracking for the collector.
func (s *LocationService) GoOffline(ctx context.Context, adminID string) error {
	return s.Admins.SetOnline(ctx, adminID, false)
}

// OnlineAdmins lists every admin currently reporting a live location.
func (s *LocationService) OnlineAdmins(ctx context.Context) ([]models.AdminProfile, error) {
	admins, err := s.Admins.FindOnline(ctx)
	if err != nil {
		return nil, err
	}
	return profiles(admins), nil
}

// AllRoutes assembles a route for every zone that has an active schedule.
func (s *LocationService) AllRoutes(ctx context.Context) ([]ZoneRoute, error) {
	schedules, err := s.Schedules.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	routes := make([]ZoneRoute, 0, len(schedules))
	for i := range schedules {
		route, err := s.buildRoute(ctx, &schedules[i])
		if err != nil {
			s.Logger.Warn("AllRoutes: failed to assemble route",
				zap.String("zone", schedules[i].Zone), zap.Error(err))
			continue
		}
		routes = append(routes, *route)
	}
	return routes, nil
}

// RouteForZone assembles the route for one zone from its active schedule.
func (s *LocationService) RouteForZone(ctx context.Context, zone string) (*ZoneRoute, error) {
	if zone == "" {
		return nil, fmt.Errorf("zone is required")
	}
	schedule, err := s.Schedules.GetActiveByZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	return s.buildRoute(ctx, schedule)
}

// UpdateCollectionStatus appends a collection event to the schedule's history.
func (s *LocationService) UpdateCollectionStatus(ctx context.Context, adminID string, req CollectionStatusRequest) error {
	if req.ScheduleID == "" {
		return fmt.Errorf("scheduleId is required")
	}
	if !models.IsValidCollectionStatus(req.Status) {
		return fmt.Errorf("invalid collection status: %s", req.Status)
	}

	event := models.CollectionEvent{
		Date:        time.Now(),
		Status:      req.Status,
		Notes:       req.Notes,
		CompletedBy: adminID,
	}
	return s.Schedules.AppendCollectionEvent(ctx, req.ScheduleID, event)
}

func (s *LocationService) buildRoute(ctx context.Context, schedule *models.WasteSchedule) (*ZoneRoute, error) {
	collectors, err := s.Admins.FindOnlineByZone(ctx, schedule.Zone)
	if err != nil {
		return nil, err
	}

	stops := make([]RouteStop, 0, len(schedule.TargetAddresses))
	for _, addr := range schedule.TargetAddresses {
		stops = append(stops, RouteStop{Address: addr})
	}

	return &ZoneRoute{
		Zone:           schedule.Zone,
		ScheduleID:     schedule.ID,
		ScheduleName:   schedule.ScheduleName,
		CollectionDay:  schedule.CollectionDay,
		CollectionTime: schedule.CollectionTime,
		Stops:          stops,
		Collectors:     profiles(collectors),
	}, nil
}

func profiles(admins []models.Admin) []models.AdminProfile {
	out := make([]models.AdminProfile, 0, len(admins))
	for i := range admins {
		out = append(out, admins[i].Profile())
	}
	return out
}
