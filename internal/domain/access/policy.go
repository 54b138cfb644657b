package access

import (
	"time"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
)

// Snapshot bundles everything the UI needs about access at one instant.
type Snapshot struct {
	Status        Status
	TrialEndsAt   *time.Time
	DaysRemaining int
	FullAccess    bool
	Watermark     bool
	TrialWarning  bool
	Capabilities  []string
}

// Evaluate reads the clock once so every field agrees with the others.
func (r *Resolver) Evaluate(sub *subscriptions.Subscription, rest *restaurants.Restaurant) Snapshot {
	now := r.now()
	status := statusAt(now, sub, rest)
	days := daysRemainingAt(now, rest)

	var trialEnd *time.Time
	if rest != nil {
		t := rest.TrialEnd()
		trialEnd = &t
	}

	return Snapshot{
		Status:        status,
		TrialEndsAt:   trialEnd,
		DaysRemaining: days,
		FullAccess:    status == StatusPro || status == StatusTrial,
		Watermark:     status == StatusExpired,
		TrialWarning:  status == StatusTrial && days <= TrialWarningDays,
		Capabilities:  CapabilitiesFor(status),
	}
}
