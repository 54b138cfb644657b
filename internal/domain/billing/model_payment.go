package billing

import (
	"time"

	"menu-app/internal/domain/users"
)

type Payment struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	UserID               uint       `gorm:"index" json:"-"`
	User                 users.User `json:"-"`
	StripeSessionID      string     `gorm:"uniqueIndex" json:"stripe_session_id"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id,omitempty"`
	AmountEUR            float64    `json:"amount_eur"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
}
