package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"

	"menu-app/config"
	"menu-app/internal/domain/billing"
	"menu-app/internal/domain/subscriptions"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func handleCheckoutSessionCompleted(db *gorm.DB, session *stripe.CheckoutSession) error {
	if session.Mode != "" && session.Mode != stripe.CheckoutSessionModeSubscription {
		return fmt.Errorf("%w: checkout mode %s", errIgnore, session.Mode)
	}
	if session.Subscription == nil || session.Subscription.ID == "" {
		return fmt.Errorf("%w: checkout session without subscription", errIgnore)
	}

	sub, err := fetchSubscription(session.Subscription.ID)
	if err != nil {
		return fmt.Errorf("fetch subscription %s: %w", session.Subscription.ID, err)
	}

	userID, err := userIDFromSubscriptionOrRef(sub, session.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("%w: %v", errIgnore, err)
	}

	updates := subscriptionUpdates(sub, config.STRIPE_PRO_PRICE_ID)
	if session.Customer != nil && session.Customer.ID != "" {
		updates["stripe_customer_id"] = session.Customer.ID
	}
	if err := subscriptions.Upsert(db, userID, updates); err != nil {
		return fmt.Errorf("update subscription after checkout: %w", err)
	}

	return recordPayment(db, userID, session)
}

// recordPayment is idempotent on the checkout session id; Stripe may deliver
// the same event more than once.
func recordPayment(db *gorm.DB, userID uint, session *stripe.CheckoutSession) error {
	p := billing.Payment{
		UserID:          userID,
		StripeSessionID: session.ID,
		AmountEUR:       float64(session.AmountTotal) / 100,
		Status:          string(session.PaymentStatus),
	}
	if session.Subscription != nil {
		id := session.Subscription.ID
		p.StripeSubscriptionID = &id
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stripe_session_id"}},
		DoNothing: true,
	}).Create(&p).Error; err != nil {
		return fmt.Errorf("record payment: %w", err)
	}
	return nil
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	if uid := userIDFromMetadata(sub.Metadata); uid != 0 {
		return uid, nil
	}
	if clientRef == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(clientRef, 10, 64)
	if err != nil || uid64 == 0 {
		return 0, fmt.Errorf("invalid client_reference_id %q", clientRef)
	}
	return uint(uid64), nil
}
