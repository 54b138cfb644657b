package users

import "time"

type MeResponse struct {
	User         UserDTO          `json:"user"`
	Restaurant   *RestaurantDTO   `json:"restaurant"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Access       AccessDTO        `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

/* ---------- RESTAURANT ---------- */

type RestaurantDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Timezone  string `json:"timezone"`
	PublicURL string `json:"public_url"`
}

/* ---------- BILLING ---------- */

type SubscriptionDTO struct {
	Plan                 string     `json:"plan"`
	Status               string     `json:"status"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Status        string     `json:"status"`
	TrialEndsAt   *time.Time `json:"trial_ends_at"`
	DaysRemaining int        `json:"days_remaining"`
	FullAccess    bool       `json:"full_access"`
	Watermark     bool       `json:"watermark"`
	TrialWarning  bool       `json:"trial_warning"`
	Capabilities  []string   `json:"capabilities"`
}
