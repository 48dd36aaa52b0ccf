package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	serviceColl *mongo.Collection
	barberColl  *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		serviceColl: db.Collection("services"),
		barberColl:  db.Collection("barbers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.serviceColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create service index: %w", err)
	}
	if _, err := r.barberColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create barber index: %w", err)
	}
	return nil
}

// CreateService inserts a catalogue entry.
func (r *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if _, err := r.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService replaces a catalogue entry.
func (r *MongoCatalogRepo) UpdateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.serviceColl.UpdateOne(ctx,
		bson.M{"shop_id": svc.ShopID, "id": svc.ID},
		bson.M{"$set": svc},
	)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", svc.ID)
	}
	return nil
}

// DeleteService removes a catalogue entry.
func (r *MongoCatalogRepo) DeleteService(shopID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.serviceColl.DeleteOne(ctx, bson.M{"shop_id": shopID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}

// GetService retrieves one catalogue entry.
func (r *MongoCatalogRepo) GetService(shopID, id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.serviceColl.FindOne(ctx, bson.M{"shop_id": shopID, "id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// GetServices retrieves the full catalogue for a shop.
func (r *MongoCatalogRepo) GetServices(shopID string) ([]models.Service, error) {
	return r.findServices(bson.M{"shop_id": shopID})
}

// GetEnabledServices retrieves only entries currently offered to clients.
func (r *MongoCatalogRepo) GetEnabledServices(shopID string) ([]models.Service, error) {
	return r.findServices(bson.M{"shop_id": shopID, "enabled": true})
}

func (r *MongoCatalogRepo) findServices(filter bson.M) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.serviceColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// SetServiceEnabled toggles whether a catalogue entry is offered.
func (r *MongoCatalogRepo) SetServiceEnabled(shopID, id string, enabled bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.serviceColl.UpdateOne(ctx,
		bson.M{"shop_id": shopID, "id": id},
		bson.M{"$set": bson.M{"enabled": enabled, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to toggle service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}

// CreateBarber inserts a barber.
func (r *MongoCatalogRepo) CreateBarber(b *models.Barber) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.CreatedAt = time.Now()
	if _, err := r.barberColl.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create barber: %w", err)
	}
	return nil
}

// UpdateBarber replaces a barber document.
func (r *MongoCatalogRepo) UpdateBarber(b *models.Barber) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.barberColl.UpdateOne(ctx,
		bson.M{"shop_id": b.ShopID, "id": b.ID},
		bson.M{"$set": b},
	)
	if err != nil {
		return fmt.Errorf("failed to update barber %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("barber %s not found", b.ID)
	}
	return nil
}

// DeleteBarber removes a barber.
func (r *MongoCatalogRepo) DeleteBarber(shopID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.barberColl.DeleteOne(ctx, bson.M{"shop_id": shopID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete barber %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("barber %s not found", id)
	}
	return nil
}

// GetBarbers retrieves the shop's barbers.
func (r *MongoCatalogRepo) GetBarbers(shopID string) ([]models.Barber, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.barberColl.Find(ctx, bson.M{"shop_id": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve barbers: %w", err)
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("failed to decode barbers: %w", err)
	}
	return barbers, nil
}
