package access

import (
	"time"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"
)

const day = 24 * time.Hour

// Resolver derives paid-access state from a subscription and a restaurant.
// Results are only valid for the instant of the call; callers re-derive on
// every request since trials end in real time.
//
// Missing inputs always resolve to the least privileged answer.
type Resolver struct {
	now clock.Func
}

func NewResolver(now clock.Func) *Resolver {
	return &Resolver{now: clock.OrSystem(now)}
}

// IsPro is true only for plan "basic" with status "active".
func IsPro(sub *subscriptions.Subscription) bool {
	return sub != nil && sub.Plan == subscriptions.PlanPro && sub.Status == subscriptions.StatusActive
}

func (r *Resolver) IsPro(sub *subscriptions.Subscription) bool {
	return IsPro(sub)
}

func (r *Resolver) IsInTrial(rest *restaurants.Restaurant) bool {
	return inTrialAt(r.now(), rest)
}

func (r *Resolver) TrialDaysRemaining(rest *restaurants.Restaurant) int {
	return daysRemainingAt(r.now(), rest)
}

// Status checks pro first, so a paying owner never sees an expired trial.
func (r *Resolver) Status(sub *subscriptions.Subscription, rest *restaurants.Restaurant) Status {
	return statusAt(r.now(), sub, rest)
}

func (r *Resolver) HasFullAccess(sub *subscriptions.Subscription, rest *restaurants.Restaurant) bool {
	s := r.Status(sub, rest)
	return s == StatusPro || s == StatusTrial
}

func (r *Resolver) ShouldShowWatermark(sub *subscriptions.Subscription, rest *restaurants.Restaurant) bool {
	return r.Status(sub, rest) == StatusExpired
}

func (r *Resolver) ShouldShowTrialWarning(sub *subscriptions.Subscription, rest *restaurants.Restaurant) bool {
	now := r.now()
	return statusAt(now, sub, rest) == StatusTrial && daysRemainingAt(now, rest) <= TrialWarningDays
}

func statusAt(now time.Time, sub *subscriptions.Subscription, rest *restaurants.Restaurant) Status {
	if IsPro(sub) {
		return StatusPro
	}
	if inTrialAt(now, rest) {
		return StatusTrial
	}
	return StatusExpired
}

// strict: at the exact instant of expiry the trial is over
func inTrialAt(now time.Time, rest *restaurants.Restaurant) bool {
	if rest == nil {
		return false
	}
	return rest.TrialEnd().After(now)
}

func daysRemainingAt(now time.Time, rest *restaurants.Restaurant) int {
	if rest == nil {
		return 0
	}
	left := rest.TrialEnd().Sub(now)
	if left <= 0 {
		return 0
	}
	days := left / day
	if left%day != 0 {
		days++
	}
	return int(days)
}
