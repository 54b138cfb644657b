package access

import (
	"testing"
	"time"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ends := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	rests := []restaurants.Restaurant{
		{OwnerID: 1, TrialEndsAt: ends(-time.Hour)},
		{OwnerID: 2, TrialEndsAt: ends(48 * time.Hour)},
		{OwnerID: 3, TrialEndsAt: ends(10 * 24 * time.Hour)},
		{OwnerID: 4, TrialEndsAt: ends(0)},
	}
	subs := IndexByUser([]subscriptions.Subscription{
		{UserID: 1, Plan: subscriptions.PlanPro, Status: subscriptions.StatusActive},
		{UserID: 4, Plan: subscriptions.PlanPro, Status: subscriptions.StatusPaused},
	})

	got := Tally(rests, subs, now)

	assert.Equal(t, map[string]int{"pro": 1, "trial": 2, "expired": 1}, got.ByStatus)
	assert.Equal(t, 1, got.TrialWarnings)
}

func TestTallyEmptyHasEveryStatus(t *testing.T) {
	got := Tally(nil, nil, time.Now())
	assert.Equal(t, map[string]int{"pro": 0, "trial": 0, "expired": 0}, got.ByStatus)
	assert.Zero(t, got.TrialWarnings)
}
