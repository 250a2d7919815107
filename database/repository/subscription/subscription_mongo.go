package subscriptionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/pr4shxnt/ecobin-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// SubscriptionRepository persists push device registrations keyed by address.
type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub *models.PushSubscription) error
	FindActiveByArea(ctx context.Context, zipCode, city string) ([]models.PushSubscription, error)
	DeactivateToken(ctx context.Context, token string) error
}

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new instance of MongoSubscriptionRepo.
func NewMongoSubscriptionRepo(db *mongo.Database) *MongoSubscriptionRepo {
	return &MongoSubscriptionRepo{coll: db.Collection("pushsubscriptions")}
}

// Upsert registers a device token, replacing any previous registration of the
// same token.
func (repo *MongoSubscriptionRepo) Upsert(ctx context.Context, sub *models.PushSubscription) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"token": sub.Token}
	update := bson.M{"$set": sub}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting push subscription: %w", err)
	}
	return nil
}

// FindActiveByArea returns active registrations whose address matches the
// given zip code and city.
func (repo *MongoSubscriptionRepo) FindActiveByArea(ctx context.Context, zipCode, city string) ([]models.PushSubscription, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"address.zipCode": zipCode,
		"address.city":    city,
		"active":          true,
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding push subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var subs []models.PushSubscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("error decoding push subscriptions: %w", err)
	}
	return subs, nil
}

// DeactivateToken marks a registration inactive, e.g. after the push provider
// reports the token as no longer valid.
func (repo *MongoSubscriptionRepo) DeactivateToken(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": false, "updatedAt": time.Now()}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"token": token}, update); err != nil {
		return fmt.Errorf("error deactivating push subscription: %w", err)
	}
	return nil
}

// EnsureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoSubscriptionRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "address.zipCode", Value: 1},
			{Key: "address.city", Value: 1},
			{Key: "active", Value: 1},
		}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create push subscription indexes: %w", err)
	}
	return nil
}
