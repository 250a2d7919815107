package landlordRepo

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

// ErrLandlordNotFound is returned when no landlord matches the given id or email.
var ErrLandlordNotFound = errors.New("landlord not found")

const opTimeout = 5 * time.Second

// LandlordRepository persists landlord accounts.
type LandlordRepository interface {
	Create(ctx context.Context, landlord *models.Landlord) error
	GetByID(ctx context.Context, id string) (*models.Landlord, error)
	GetByEmail(ctx context.Context, email string) (*models.Landlord, error)
}

// MongoLandlordRepo implements LandlordRepository using MongoDB.
type MongoLandlordRepo struct {
	coll *mongo.Collection
}

// NewMongoLandlordRepo constructs a new instance of MongoLandlordRepo.
func NewMongoLandlordRepo(db *mongo.Database) *MongoLandlordRepo {
	return &MongoLandlordRepo{coll: db.Collection("landlords")}
}

func (repo *MongoLandlordRepo) Create(ctx context.Context, landlord *models.Landlord) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, landlord); err != nil {
		return fmt.Errorf("error creating landlord: %w", err)
	}
	return nil
}

func (repo *MongoLandlordRepo) GetByID(ctx context.Context, id string) (*models.Landlord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var landlord models.Landlord
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&landlord); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLandlordNotFound
		}
		return nil, fmt.Errorf("error fetching landlord %s: %w", id, err)
	}
	return &landlord, nil
}

func (repo *MongoLandlordRepo) GetByEmail(ctx context.Context, email string) (*models.Landlord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var landlord models.Landlord
	if err := repo.coll.FindOne(ctx, bson.M{"emailAddress": email}).Decode(&landlord); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLandlordNotFound
		}
		return nil, fmt.Errorf("error fetching landlord by email: %w", err)
	}
	return &landlord, nil
}

// EnsureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoLandlordRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "emailAddress", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create landlord indexes: %w", err)
	}
	return nil
}
