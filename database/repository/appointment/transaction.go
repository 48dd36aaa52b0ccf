package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithRewardDebit inserts the appointment and, when a reward discount
// was applied, debits the client's balance in the same transaction. The debit
// is conditional on the balance still covering the discount, so a stale
// session cannot push the balance negative.
func (r *MongoAppointmentRepo) CreateWithRewardDebit(appt *models.Appointment) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.apptColl.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("failed to create appointment: %w", err)
		}
		if appt.RewardApplied > 0 && appt.ClientID != models.WalkInClientID {
			result, err := r.userColl.UpdateOne(sc,
				bson.M{"id": appt.ClientID, "reward_balance": bson.M{"$gte": appt.RewardApplied}},
				bson.M{"$inc": bson.M{"reward_balance": -appt.RewardApplied}},
			)
			if err != nil {
				return nil, fmt.Errorf("failed to debit reward balance: %w", err)
			}
			if result.MatchedCount == 0 {
				return nil, fmt.Errorf("reward balance of client %s no longer covers discount", appt.ClientID)
			}
		}
		return nil, nil
	})
	return err
}

// CompleteWithReferralCredit transitions a confirmed appointment to completed
// and grants any referral credits. The status flip and the reward_credited
// flag change in one conditional update, so double submissions credit once.
func (r *MongoAppointmentRepo) CompleteWithReferralCredit(shopID, id string, credit *ReferralCredit) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := r.apptColl.UpdateOne(sc,
			bson.M{
				"shop_id":         shopID,
				"id":              id,
				"status":          models.StatusConfirmed,
				"reward_credited": false,
			},
			bson.M{"$set": bson.M{
				"status":          models.StatusCompleted,
				"reward_credited": true,
				"updated_at":      time.Now(),
			}},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to complete appointment %s: %w", id, err)
		}
		if result.MatchedCount == 0 {
			return nil, ErrIllegalTransition
		}

		if credit == nil {
			return nil, nil
		}
		if credit.ReferrerID != "" && credit.ReferrerAmount > 0 {
			if err := r.creditUser(sc, credit.ReferrerID, credit.ReferrerAmount, bson.M{
				"referral_stats.successfulReferrals": 1,
				"referral_stats.totalRewardsEarned":  credit.ReferrerAmount,
			}); err != nil {
				return nil, err
			}
		}
		if credit.ReferredID != "" && credit.ReferredAmount > 0 {
			result, err := r.userColl.UpdateOne(sc,
				bson.M{"id": credit.ReferredID, "welcome_reward_used": false},
				bson.M{
					"$inc": bson.M{"reward_balance": credit.ReferredAmount},
					"$set": bson.M{"welcome_reward_used": true},
				},
			)
			if err != nil {
				return nil, fmt.Errorf("failed to credit referred client %s: %w", credit.ReferredID, err)
			}
			// Already-used welcome rewards are skipped silently.
			_ = result
		}
		return nil, nil
	})
	return err
}

func (r *MongoAppointmentRepo) creditUser(ctx context.Context, userID string, amount float64, extraInc bson.M) error {
	inc := bson.M{"reward_balance": amount}
	for k, v := range extraInc {
		inc[k] = v
	}
	result, err := r.userColl.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$inc": inc})
	if err != nil {
		return fmt.Errorf("failed to credit user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found for reward credit", userID)
	}
	return nil
}
