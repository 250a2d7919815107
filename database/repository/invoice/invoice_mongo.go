package invoiceRepo

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

// ErrInvoiceNotFound is returned when no invoice matches the given id.
var ErrInvoiceNotFound = errors.New("invoice not found")

const opTimeout = 5 * time.Second

// InvoiceUpdate carries the mutable invoice fields; nil fields are left untouched.
type InvoiceUpdate struct {
	Items       *[]models.InvoiceItem
	DueDate     *time.Time
	Notes       *string
	Status      *string
	TotalAmount *float64
}

// InvoiceRepository persists billing documents.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.Invoice, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetByCustomer(ctx context.Context, customerID string) (*models.Invoice, error)
	Update(ctx context.Context, id string, update InvoiceUpdate) (*models.Invoice, error)
	Delete(ctx context.Context, id string) error
}

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo constructs a new instance of MongoInvoiceRepo.
func NewMongoInvoiceRepo(db *mongo.Database) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{coll: db.Collection("invoices")}
}

func (repo *MongoInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, invoice); err != nil {
		return fmt.Errorf("error creating invoice: %w", err)
	}
	return nil
}

func (repo *MongoInvoiceRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting invoices: %w", err)
	}
	return count, nil
}

func (repo *MongoInvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, fmt.Errorf("error decoding invoices: %w", err)
	}
	return invoices, nil
}

func (repo *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var invoice models.Invoice
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("error fetching invoice %s: %w", id, err)
	}
	return &invoice, nil
}

func (repo *MongoInvoiceRepo) GetByCustomer(ctx context.Context, customerID string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var invoice models.Invoice
	if err := repo.coll.FindOne(ctx, bson.M{"customer": customerID}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("error fetching invoice for customer %s: %w", customerID, err)
	}
	return &invoice, nil
}

func (repo *MongoInvoiceRepo) Update(ctx context.Context, id string, update InvoiceUpdate) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if update.Items != nil {
		set["items"] = *update.Items
	}
	if update.DueDate != nil {
		set["dueDate"] = *update.DueDate
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.TotalAmount != nil {
		set["totalAmount"] = *update.TotalAmount
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Invoice
	err := repo.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("error updating invoice %s: %w", id, err)
	}
	return &updated, nil
}

func (repo *MongoInvoiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting invoice %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// EnsureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoInvoiceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer", Value: 1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create invoice indexes: %w", err)
	}
	return nil
}
