package stripewebhooks

import (
	"fmt"
	"time"

	"menu-app/internal/domain/subscriptions"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleSubscriptionDeleted keeps the row and marks it canceled; the owner
// falls back to trial or expired.
func handleSubscriptionDeleted(db *gorm.DB, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return fmt.Errorf("%w: subscription without id", errIgnore)
	}
	userID, err := resolveUserID(db, sub)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"status": subscriptions.StatusCanceled,
	}
	if sub.CurrentPeriodEnd > 0 {
		updates["current_period_end"] = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}
	return subscriptions.Upsert(db, userID, updates)
}
