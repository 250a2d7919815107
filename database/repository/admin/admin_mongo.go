package adminRepo

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

// ErrAdminNotFound is returned when no admin matches the given id or email.
var ErrAdminNotFound = errors.New("admin not found")

const opTimeout = 5 * time.Second

// AdminUpdate carries the mutable profile fields; nil fields are left untouched.
type AdminUpdate struct {
	FirstName     *string
	LastName      *string
	PhoneNumber   *string
	AssignedZones *[]string
	VehicleInfo   *models.VehicleInfo
}

// AdminRepository persists operator accounts and their live-tracking state.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, id string, update AdminUpdate) (*models.Admin, error)
	SetLocation(ctx context.Context, id string, coords models.Coordinates, online bool) (*models.Admin, error)
	SetOnline(ctx context.Context, id string, online bool) error
	FindOnline(ctx context.Context) ([]models.Admin, error)
	FindOnlineByZone(ctx context.Context, zone string) ([]models.Admin, error)
}

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo constructs a new instance of MongoAdminRepo.
func NewMongoAdminRepo(db *mongo.Database) *MongoAdminRepo {
	return &MongoAdminRepo{coll: db.Collection("admins")}
}

func (repo *MongoAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

func (repo *MongoAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var admin models.Admin
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("error fetching admin %s: %w", id, err)
	}
	return &admin, nil
}

func (repo *MongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var admin models.Admin
	if err := repo.coll.FindOne(ctx, bson.M{"emailAddress": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("error fetching admin by email: %w", err)
	}
	return &admin, nil
}

func (repo *MongoAdminRepo) UpdateProfile(ctx context.Context, id string, update AdminUpdate) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.PhoneNumber != nil {
		set["phoneNumber"] = *update.PhoneNumber
	}
	if update.AssignedZones != nil {
		set["assignedZones"] = *update.AssignedZones
	}
	if update.VehicleInfo != nil {
		set["vehicleInfo"] = *update.VehicleInfo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Admin
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("error updating admin %s: %w", id, err)
	}
	return &updated, nil
}

func (repo *MongoAdminRepo) SetLocation(ctx context.Context, id string, coords models.Coordinates, online bool) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"currentLocation.coordinates": coords,
		"currentLocation.lastUpdated": time.Now(),
		"currentLocation.isOnline":    online,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Admin
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("error updating location for admin %s: %w", id, err)
	}
	return &updated, nil
}

func (repo *MongoAdminRepo) SetOnline(ctx context.Context, id string, online bool) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"currentLocation.isOnline":    online,
		"currentLocation.lastUpdated": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error setting online status for admin %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (repo *MongoAdminRepo) FindOnline(ctx context.Context) ([]models.Admin, error) {
	return repo.findAdmins(ctx, bson.M{"currentLocation.isOnline": true})
}

func (repo *MongoAdminRepo) FindOnlineByZone(ctx context.Context, zone string) ([]models.Admin, error) {
	return repo.findAdmins(ctx, bson.M{
		"currentLocation.isOnline": true,
		"assignedZones":            zone,
	})
}

func (repo *MongoAdminRepo) findAdmins(ctx context.Context, filter bson.M) ([]models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding admins: %w", err)
	}
	defer cursor.Close(ctx)

	var admins []models.Admin
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, fmt.Errorf("error decoding admins: %w", err)
	}
	return admins, nil
}

// EnsureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoAdminRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "emailAddress", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "currentLocation.isOnline", Value: 1}}},
		{Keys: bson.D{{Key: "assignedZones", Value: 1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}
