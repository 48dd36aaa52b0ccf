package expenseRepo

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

// ExpenseRepository defines persistence operations for shop expenses.
type ExpenseRepository interface {
	Create(e *models.Expense) error
	Update(e *models.Expense) error
	Delete(shopID, id string) error
	GetByShop(shopID string) ([]models.Expense, error)
	TotalByShop(shopID string) (float64, error)
}

// MongoExpenseRepo implements ExpenseRepository using MongoDB.
type MongoExpenseRepo struct {
	coll *mongo.Collection
}

// NewMongoExpenseRepo creates a new instance of ExpenseRepository using MongoDB.
func NewMongoExpenseRepo() ExpenseRepository {
	repo := &MongoExpenseRepo{coll: database.DB().Collection("expenses")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoExpenseRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create expense index: %w", err)
	}
	return nil
}

// Create inserts an expense.
func (r *MongoExpenseRepo) Create(e *models.Expense) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	e.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// Update replaces an expense document.
func (r *MongoExpenseRepo) Update(e *models.Expense) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"shop_id": e.ShopID, "id": e.ID},
		bson.M{"$set": e},
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", e.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("expense %s not found", e.ID)
	}
	return nil
}

// Delete removes an expense.
func (r *MongoExpenseRepo) Delete(shopID, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"shop_id": shopID, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("expense %s not found", id)
	}
	return nil
}

// GetByShop retrieves the shop's expenses, newest first.
func (r *MongoExpenseRepo) GetByShop(shopID string) ([]models.Expense, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"shop_id": shopID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	return expenses, nil
}

// TotalByShop sums the shop's expenses using an aggregation pipeline.
func (r *MongoExpenseRepo) TotalByShop(shopID string) (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"shop_id": shopID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode expense total: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
