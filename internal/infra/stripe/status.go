package stripe

import (
	"strings"

	"menu-app/internal/domain/subscriptions"
)

// NormalizeStatus maps a Stripe subscription status onto the statuses stored
// on subscriptions. Only "active" grants Pro; everything else is kept
// distinct so the dashboard can explain why access was lost.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return subscriptions.StatusNone
	case "active":
		return subscriptions.StatusActive
	case "trialing":
		return subscriptions.StatusTrialing
	case "past_due", "unpaid":
		return subscriptions.StatusPastDue
	case "paused":
		return subscriptions.StatusPaused
	case "canceled", "incomplete_expired":
		return subscriptions.StatusCanceled
	case "incomplete":
		return subscriptions.StatusIncomplete
	default:
		return strings.TrimSpace(s)
	}
}

// PlanForPrice returns the plan tag for a Stripe price id.
func PlanForPrice(priceID, proPriceID string) string {
	if priceID != "" && priceID == proPriceID {
		return subscriptions.PlanPro
	}
	return subscriptions.PlanFree
}
