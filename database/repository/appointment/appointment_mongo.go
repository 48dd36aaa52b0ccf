package appointmentRepo

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

// ErrIllegalTransition is returned when a status update does not match the
// appointment's current state.
var ErrIllegalTransition = fmt.Errorf("appointment status transition not allowed")

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	client   *mongo.Client
	apptColl *mongo.Collection
	userColl *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.DB()
	repo := &MongoAppointmentRepo{
		client:   database.MongoClient,
		apptColl: db.Collection("appointments"),
		userColl: db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "client_id", Value: 1}}},
	}
	if _, err := r.apptColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves one appointment scoped to a shop.
func (r *MongoAppointmentRepo) GetByID(shopID, id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.apptColl.FindOne(ctx, bson.M{"shop_id": shopID, "id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// List retrieves a shop's appointments, newest first, honoring the query filters.
func (r *MongoAppointmentRepo) List(shopID string, q AppointmentQuery) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"shop_id": shopID}
	if q.Date != "" {
		filter["date"] = q.Date
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.ClientID != "" {
		filter["client_id"] = q.ClientID
	}
	if q.BarberID != "" {
		filter["barber_id"] = q.BarberID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.apptColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// GetBookedForDate retrieves the appointments that occupy the schedule on a
// date: those still pending or confirmed.
func (r *MongoAppointmentRepo) GetBookedForDate(shopID, date string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"shop_id": shopID,
		"date":    date,
		"status":  bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed}},
	}
	cursor, err := r.apptColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return appointments, nil
}

// UpdateStatus transitions an appointment from one status to another. The
// current status is part of the filter, so concurrent conflicting updates
// lose cleanly with ErrIllegalTransition.
func (r *MongoAppointmentRepo) UpdateStatus(shopID, id, from, to string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.apptColl.UpdateOne(ctx,
		bson.M{"shop_id": shopID, "id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update status of appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrIllegalTransition
	}
	return nil
}

// SetPaymentStatus updates the recorded payment state.
func (r *MongoAppointmentRepo) SetPaymentStatus(shopID, id, paymentStatus string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.apptColl.UpdateOne(ctx,
		bson.M{"shop_id": shopID, "id": id},
		bson.M{"$set": bson.M{"payment_status": paymentStatus, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update payment status of appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}
