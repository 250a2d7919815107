package tenantRepo

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

// ErrTenantNotFound is returned when no tenant matches the given id or email.
var ErrTenantNotFound = errors.New("tenant not found")

const opTimeout = 5 * time.Second

// TenantRepository persists tenant accounts.
type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
	GetByEmail(ctx context.Context, email string) (*models.Tenant, error)
}

// MongoTenantRepo implements TenantRepository using MongoDB.
type MongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo constructs a new instance of MongoTenantRepo.
func NewMongoTenantRepo(db *mongo.Database) *MongoTenantRepo {
	return &MongoTenantRepo{coll: db.Collection("tenants")}
}

func (repo *MongoTenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, tenant); err != nil {
		return fmt.Errorf("error creating tenant: %w", err)
	}
	return nil
}

func (repo *MongoTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var tenant models.Tenant
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tenant); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("error fetching tenant %s: %w", id, err)
	}
	return &tenant, nil
}

func (repo *MongoTenantRepo) GetByEmail(ctx context.Context, email string) (*models.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var tenant models.Tenant
	if err := repo.coll.FindOne(ctx, bson.M{"emailAddress": email}).Decode(&tenant); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("error fetching tenant by email: %w", err)
	}
	return &tenant, nil
}

// EnsureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoTenantRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "emailAddress", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create tenant indexes: %w", err)
	}
	return nil
}
