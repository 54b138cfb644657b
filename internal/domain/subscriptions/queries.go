package subscriptions

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ForUser returns nil, nil when the user never subscribed, which the access
// resolver treats as non-Pro.
func ForUser(db *gorm.DB, userID uint) (*Subscription, error) {
	var s Subscription
	err := db.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load subscription for user %d: %w", userID, err)
	}
	return &s, nil
}

// ByStripeID looks a subscription up by its Stripe id.
func ByStripeID(db *gorm.DB, stripeSubscriptionID string) (*Subscription, error) {
	var s Subscription
	err := db.Where("stripe_subscription_id = ?", stripeSubscriptionID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load subscription %s: %w", stripeSubscriptionID, err)
	}
	return &s, nil
}

// Upsert creates the user's subscription row or updates it in place.
// One row per user is enforced by the unique index on user_id.
func Upsert(db *gorm.DB, userID uint, updates map[string]interface{}) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing Subscription
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s := Subscription{UserID: userID, Plan: PlanFree, Status: StatusNone}
			if err := tx.Create(&s).Error; err != nil {
				return fmt.Errorf("create subscription: %w", err)
			}
			existing = s
		} else if err != nil {
			return fmt.Errorf("load subscription: %w", err)
		}

		if err := tx.Model(&Subscription{}).
			Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("update subscription: %w", err)
		}
		return nil
	})
}
