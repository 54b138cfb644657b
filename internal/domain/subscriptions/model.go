package subscriptions

import "time"

// Plan tags. "basic" is the Pro tier; the name is kept for existing rows.
const (
	PlanPro  = "basic"
	PlanFree = "free"
)

// Status tags, normalised from Stripe (see infra/stripe).
const (
	StatusActive     = "active"
	StatusTrialing   = "trialing"
	StatusPastDue    = "past_due"
	StatusPaused     = "paused"
	StatusCanceled   = "canceled"
	StatusIncomplete = "incomplete"
	StatusNone       = "none"
)

// Subscription is never deleted, only moved between statuses by webhooks.
type Subscription struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_subscriptions_user_id" json:"-"`
	Plan   string `gorm:"not null;default:'free'" json:"plan"`
	Status string `gorm:"not null;default:'none'" json:"status"`

	StripeCustomerID     *string    `gorm:"column:stripe_customer_id;index" json:"-"`
	StripeSubscriptionID *string    `gorm:"column:stripe_subscription_id;uniqueIndex:idx_subscriptions_stripe_id" json:"stripe_subscription_id,omitempty"`
	CurrentPeriodEnd     *time.Time `gorm:"column:current_period_end" json:"current_period_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
