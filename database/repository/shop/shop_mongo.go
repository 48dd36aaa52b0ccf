package shopRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	shopColl     *mongo.Collection
	settingsColl *mongo.Collection
	paymentColl  *mongo.Collection
}

// NewMongoShopRepo creates a new instance of ShopRepository using MongoDB.
func NewMongoShopRepo() ShopRepository {
	db := database.DB()
	repo := &MongoShopRepo{
		shopColl:     db.Collection("shops"),
		settingsColl: db.Collection("shopSettings"),
		paymentColl:  db.Collection("paymentMethods"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoShopRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.shopColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create shop indexes: %w", err)
	}
	if _, err := r.settingsColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create settings index: %w", err)
	}
	if _, err := r.paymentColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "id", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create payment method index: %w", err)
	}
	return nil
}

// Create inserts a new shop document.
func (r *MongoShopRepo) Create(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	if _, err := r.shopColl.InsertOne(ctx, shop); err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// Update modifies an existing shop document.
func (r *MongoShopRepo) Update(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	shop.UpdatedAt = time.Now()
	result, err := r.shopColl.UpdateOne(ctx, bson.M{"id": shop.ID}, bson.M{"$set": shop})
	if err != nil {
		return fmt.Errorf("failed to update shop with id %s: %w", shop.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", shop.ID)
	}
	return nil
}

// GetByID retrieves a shop by its unique ID.
func (r *MongoShopRepo) GetByID(id string) (*models.Shop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.shopColl.FindOne(ctx, bson.M{"id": id}).Decode(&shop); err != nil {
		return nil, fmt.Errorf("failed to fetch shop with id %s: %w", id, err)
	}
	return &shop, nil
}

// GetByOwner retrieves the shop owned by the given user. Returns nil when the
// owner has no shop yet.
func (r *MongoShopRepo) GetByOwner(ownerID string) (*models.Shop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	err := r.shopColl.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shop for owner %s: %w", ownerID, err)
	}
	return &shop, nil
}

// IncrementCustomerCount atomically adjusts the shop's customer counter.
func (r *MongoShopRepo) IncrementCustomerCount(id string, delta int) error {
	return r.increment(id, "customer_count", delta)
}

// IncrementBookingCount atomically adjusts the shop's booking counter.
func (r *MongoShopRepo) IncrementBookingCount(id string, delta int) error {
	return r.increment(id, "booking_count", delta)
}

func (r *MongoShopRepo) increment(id, field string, delta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.shopColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to increment %s for shop %s: %w", field, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", id)
	}
	return nil
}

// SetPinHash stores the bcrypt hash of the shop's admin PIN.
func (r *MongoShopRepo) SetPinHash(id, pinHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.shopColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"admin_pin_hash": pinHash, "updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to set pin for shop %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", id)
	}
	return nil
}
