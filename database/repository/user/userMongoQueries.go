// File: database/repository/user/userMongoQueries.go
package userRepo

import (
	"fmt"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByShop retrieves every account belonging to a shop.
func (r *MongoUserRepo) GetByShop(shopID string) ([]models.User, error) {
	return r.findMany(bson.M{"shop_id": shopID})
}

// GetClientsByShop retrieves the shop's client accounts only.
func (r *MongoUserRepo) GetClientsByShop(shopID string) ([]models.User, error) {
	return r.findMany(bson.M{"shop_id": shopID, "role": models.RoleClient})
}

func (r *MongoUserRepo) findMany(filter bson.M) ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetByReferralCode looks up the holder of a referral code within a shop.
// Returns nil when the code does not exist.
func (r *MongoUserRepo) GetByReferralCode(shopID, code string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"shop_id": shopID, "referral_code": code}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user by referral code: %w", err)
	}
	return &user, nil
}

// GetByTokenHash retrieves the user holding the given auth token hash.
func (r *MongoUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user by token hash: %w", err)
	}
	return &user, nil
}

// SetTokenHash stores (or clears, with an empty string) the auth token hash.
func (r *MongoUserRepo) SetTokenHash(id, tokenHash string) error {
	return r.setFields(id, bson.M{"token_hash": tokenHash})
}

// SetRole updates the role and, for staff, the permission set.
func (r *MongoUserRepo) SetRole(id, role string, permissions *models.StaffPermissions) error {
	fields := bson.M{"role": role}
	if permissions != nil {
		fields["permissions"] = permissions
	}
	return r.setFields(id, fields)
}

// SetEnabled toggles whether the account can sign in.
func (r *MongoUserRepo) SetEnabled(id string, enabled bool) error {
	return r.setFields(id, bson.M{"enabled": enabled})
}

func (r *MongoUserRepo) setFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s not found", id)
	}
	return nil
}
