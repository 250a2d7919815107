package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pr4shxnt/ecobin-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrScheduleNotFound is returned when no schedule matches the given id.
var ErrScheduleNotFound = errors.New("waste schedule not found")

const opTimeout = 5 * time.Second

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo(db *mongo.Database) *MongoScheduleRepo {
	return &MongoScheduleRepo{coll: db.Collection("wasteschedules")}
}

func (repo *MongoScheduleRepo) Create(ctx context.Context, schedule *models.WasteSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, schedule); err != nil {
		return fmt.Errorf("error creating waste schedule: %w", err)
	}
	return nil
}

func (repo *MongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.WasteSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var schedule models.WasteSchedule
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error fetching waste schedule %s: %w", id, err)
	}
	return &schedule, nil
}

func (repo *MongoScheduleRepo) List(ctx context.Context, filter ScheduleFilter, page, limit int64) ([]models.WasteSchedule, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Zone != "" {
		query["zone"] = filter.Zone
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting waste schedules: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing waste schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WasteSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, 0, fmt.Errorf("error decoding waste schedules: %w", err)
	}
	return schedules, total, nil
}

func (repo *MongoScheduleRepo) Update(ctx context.Context, id string, update ScheduleUpdate) (*models.WasteSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.ScheduleName != nil {
		set["scheduleName"] = *update.ScheduleName
	}
	if update.CollectionDay != nil {
		set["collectionDay"] = *update.CollectionDay
	}
	if update.CollectionTime != nil {
		set["collectionTime"] = *update.CollectionTime
	}
	if update.Zone != nil {
		set["zone"] = *update.Zone
	}
	if update.TargetAddresses != nil {
		set["targetAddresses"] = *update.TargetAddresses
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.PushNotificationEnabled != nil {
		set["pushNotificationEnabled"] = *update.PushNotificationEnabled
	}
	if update.ReminderFrequency != nil {
		set["reminderFrequency"] = *update.ReminderFrequency
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.WasteSchedule
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error updating waste schedule %s: %w", id, err)
	}
	return &updated, nil
}

func (repo *MongoScheduleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting waste schedule %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
