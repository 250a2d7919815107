package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pr4shxnt/ecobin-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindDue selects every schedule eligible for a reminder run: active,
// push-enabled, with a set nextNotificationDate at or before now. Schedules
// whose next date was never computed are not yet due and are skipped.
func (repo *MongoScheduleRepo) FindDue(ctx context.Context, now time.Time) ([]models.WasteSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"status":                  models.ScheduleStatusActive,
		"pushNotificationEnabled": true,
		"nextNotificationDate":    bson.M{"$ne": nil, "$lte": now},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding due schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var due []models.WasteSchedule
	if err := cursor.All(ctx, &due); err != nil {
		return nil, fmt.Errorf("error decoding due schedules: %w", err)
	}
	return due, nil
}

func (repo *MongoScheduleRepo) AdvanceNotificationDates(ctx context.Context, id string, lastSent, next time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"lastNotificationSent": lastSent,
		"nextNotificationDate": next,
		"updatedAt":            time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error advancing notification dates for schedule %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (repo *MongoScheduleRepo) AppendCollectionEvent(ctx context.Context, id string, event models.CollectionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"collectionHistory": event},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error appending collection event for schedule %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (repo *MongoScheduleRepo) GetActiveByZone(ctx context.Context, zone string) (*models.WasteSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var schedule models.WasteSchedule
	filter := bson.M{"zone": zone, "status": models.ScheduleStatusActive}
	if err := repo.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error fetching active schedule for zone %s: %w", zone, err)
	}
	return &schedule, nil
}

func (repo *MongoScheduleRepo) ListActive(ctx context.Context) ([]models.WasteSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"status": models.ScheduleStatusActive})
	if err != nil {
		return nil, fmt.Errorf("error listing active schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WasteSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding active schedules: %w", err)
	}
	return schedules, nil
}
