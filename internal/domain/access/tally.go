package access

import (
	"time"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"
)

// Counts is a census of restaurants by access status.
type Counts struct {
	ByStatus      map[string]int
	TrialWarnings int
}

// Tally evaluates every restaurant against its owner's subscription at the
// single instant now. subsByOwner is keyed by user id; a missing entry means
// no subscription. Every status has a key, zero or not.
func Tally(rests []restaurants.Restaurant, subsByOwner map[uint]*subscriptions.Subscription, now time.Time) Counts {
	out := Counts{ByStatus: map[string]int{
		string(StatusPro):     0,
		string(StatusTrial):   0,
		string(StatusExpired): 0,
	}}
	r := NewResolver(clock.Fixed(now))
	for i := range rests {
		snap := r.Evaluate(subsByOwner[rests[i].OwnerID], &rests[i])
		out.ByStatus[string(snap.Status)]++
		if snap.TrialWarning {
			out.TrialWarnings++
		}
	}
	return out
}

// IndexByUser keys subscriptions by their user id.
func IndexByUser(subs []subscriptions.Subscription) map[uint]*subscriptions.Subscription {
	out := make(map[uint]*subscriptions.Subscription, len(subs))
	for i := range subs {
		out[subs[i].UserID] = &subs[i]
	}
	return out
}
