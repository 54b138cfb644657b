package stripewebhooks

import (
	"fmt"
	"strconv"
	"time"

	"menu-app/config"
	"menu-app/internal/domain/subscriptions"
	stripestatus "menu-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

func handleSubscriptionUpdated(db *gorm.DB, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return fmt.Errorf("%w: subscription without id", errIgnore)
	}
	userID, err := resolveUserID(db, sub)
	if err != nil {
		return err
	}
	return subscriptions.Upsert(db, userID, subscriptionUpdates(sub, config.STRIPE_PRO_PRICE_ID))
}

// subscriptionUpdates is the column set mirrored from a Stripe subscription.
// The plan is only touched when the subscription carries a price.
func subscriptionUpdates(sub *stripe.Subscription, proPriceID string) map[string]interface{} {
	updates := map[string]interface{}{
		"status":                 stripestatus.NormalizeStatus(string(sub.Status)),
		"stripe_subscription_id": sub.ID,
	}
	if sub.CurrentPeriodEnd > 0 {
		updates["current_period_end"] = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		updates["plan"] = stripestatus.PlanForPrice(sub.Items.Data[0].Price.ID, proPriceID)
	}
	if sub.Customer != nil && sub.Customer.ID != "" {
		updates["stripe_customer_id"] = sub.Customer.ID
	}
	return updates
}

// resolveUserID prefers metadata.user_id and falls back to the stored
// subscription row.
func resolveUserID(db *gorm.DB, sub *stripe.Subscription) (uint, error) {
	if uid := userIDFromMetadata(sub.Metadata); uid != 0 {
		return uid, nil
	}
	existing, err := subscriptions.ByStripeID(db, sub.ID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, fmt.Errorf("%w: no local subscription for %s", errIgnore, sub.ID)
	}
	return existing.UserID, nil
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
