package notificationRepo

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

// ErrNotificationNotFound is returned when no record matches the given id.
var ErrNotificationNotFound = errors.New("push notification not found")

const opTimeout = 5 * time.Second

// DefaultHistoryLimit caps address history queries when no limit is given.
const DefaultHistoryLimit = 50

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo(db *mongo.Database) *MongoNotificationRepo {
	return &MongoNotificationRepo{coll: db.Collection("pushnotifications")}
}

func (repo *MongoNotificationRepo) Insert(ctx context.Context, record *models.PushNotification) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("error inserting push notification record: %w", err)
	}
	return nil
}

// HistoryForAddress returns records matching the address by zip code and city,
// newest first, capped at limit.
func (repo *MongoNotificationRepo) HistoryForAddress(ctx context.Context, zipCode, city string, limit int64) ([]models.PushNotification, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	filter := bson.M{
		"targetAddress.zipCode": zipCode,
		"targetAddress.city":    city,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching notification history: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PushNotification
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding notification history: %w", err)
	}
	return records, nil
}

// StatsByType groups records by notification type and counts total, sent,
// delivered and clicked records per type.
func (repo *MongoNotificationRepo) StatsByType(ctx context.Context) ([]models.NotificationTypeStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$type",
			"count":     bson.M{"$sum": 1},
			"sent":      bson.M{"$sum": bson.M{"$cond": bson.A{"$sent", 1, 0}}},
			"delivered": bson.M{"$sum": bson.M{"$cond": bson.A{"$delivered", 1, 0}}},
			"clicked":   bson.M{"$sum": bson.M{"$cond": bson.A{"$clicked", 1, 0}}},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating notification stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.NotificationTypeStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("error decoding notification stats: %w", err)
	}
	return stats, nil
}

// MarkClicked sets the clicked flag and timestamp on a record. The clicked
// timestamp is only ever set together with the flag.
func (repo *MongoNotificationRepo) MarkClicked(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"clicked": true, "clickedAt": at}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error marking notification %s clicked: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (repo *MongoNotificationRepo) CountBySchedule(ctx context.Context, scheduleID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"wasteScheduleId": scheduleID})
	if err != nil {
		return 0, fmt.Errorf("error counting notifications for schedule %s: %w", scheduleID, err)
	}
	return count, nil
}

// EnsureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoNotificationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "targetAddress.zipCode", Value: 1},
			{Key: "sent", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "sent", Value: 1}}},
		{Keys: bson.D{{Key: "wasteScheduleId", Value: 1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create push notification indexes: %w", err)
	}
	return nil
}
