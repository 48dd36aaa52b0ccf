// File: database/repository/shop/settings.go
package shopRepo

import (
	"fmt"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Defaults applied when a shop has no settings document yet.
const (
	DefaultOpeningTime = "09:00"
	DefaultClosingTime = "18:00"
)

// GetSettings retrieves the shop's settings, falling back to defaults when
// none have been saved yet.
func (r *MongoShopRepo) GetSettings(shopID string) (*models.ShopSettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var settings models.ShopSettings
	err := r.settingsColl.FindOne(ctx, bson.M{"shop_id": shopID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.ShopSettings{
				ShopID:      shopID,
				OpeningTime: DefaultOpeningTime,
				ClosingTime: DefaultClosingTime,
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch settings for shop %s: %w", shopID, err)
	}
	return &settings, nil
}

// UpsertSettings creates or replaces the shop's settings document.
func (r *MongoShopRepo) UpsertSettings(settings *models.ShopSettings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.settingsColl.ReplaceOne(ctx, bson.M{"shop_id": settings.ShopID}, settings, opts); err != nil {
		return fmt.Errorf("failed to upsert settings for shop %s: %w", settings.ShopID, err)
	}
	return nil
}

// ListPaymentMethods returns the shop's configured payout destinations.
func (r *MongoShopRepo) ListPaymentMethods(shopID string) ([]models.PaymentMethod, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.paymentColl.Find(ctx, bson.M{"shop_id": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment methods: %w", err)
	}
	defer cursor.Close(ctx)

	var methods []models.PaymentMethod
	if err := cursor.All(ctx, &methods); err != nil {
		return nil, fmt.Errorf("failed to decode payment methods: %w", err)
	}
	return methods, nil
}

// CreatePaymentMethod inserts a payout destination.
func (r *MongoShopRepo) CreatePaymentMethod(pm *models.PaymentMethod) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pm.CreatedAt = time.Now()
	if _, err := r.paymentColl.InsertOne(ctx, pm); err != nil {
		return fmt.Errorf("failed to create payment method: %w", err)
	}
	return nil
}

// UpdatePaymentMethod replaces a payout destination.
func (r *MongoShopRepo) UpdatePaymentMethod(pm *models.PaymentMethod) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.paymentColl.UpdateOne(ctx,
		bson.M{"shop_id": pm.ShopID, "id": pm.ID},
		bson.M{"$set": pm},
	)
	if err != nil {
		return fmt.Errorf("failed to update payment method %s: %w", pm.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment method %s not found", pm.ID)
	}
	return nil
}

// DeletePaymentMethod removes a payout destination.
func (r *MongoShopRepo) DeletePaymentMethod(shopID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.paymentColl.DeleteOne(ctx, bson.M{"shop_id": shopID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete payment method %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("payment method %s not found", id)
	}
	return nil
}
