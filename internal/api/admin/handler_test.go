package admin

import (
	"testing"
	"time"

	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/domain/users"
	"menu-app/internal/platform/clock"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestCountStats(t *testing.T) {
	rests := []restaurants.Restaurant{
		{ID: "a", OwnerID: 1, TrialEndsAt: at(-time.Hour)},
		{ID: "b", OwnerID: 2, TrialEndsAt: at(-time.Hour)},
		{ID: "c", OwnerID: 3, TrialEndsAt: at(48 * time.Hour)},
		{ID: "d", OwnerID: 4, TrialEndsAt: at(10 * 24 * time.Hour)},
	}
	subs := map[uint]*subscriptions.Subscription{
		1: {UserID: 1, Plan: subscriptions.PlanPro, Status: subscriptions.StatusActive},
		2: {UserID: 2, Plan: subscriptions.PlanPro, Status: subscriptions.StatusPastDue},
	}

	stats := CountStats(rests, subs, now)

	assert.Equal(t, 4, stats.TotalRestaurants)
	assert.Equal(t, map[string]int{"pro": 1, "trial": 2, "expired": 1}, stats.ByAccessStatus)
	assert.Equal(t, 1, stats.TrialWarnings)
}

func TestCountStatsEmpty(t *testing.T) {
	stats := CountStats(nil, nil, now)
	assert.Equal(t, 0, stats.TotalRestaurants)
	assert.Equal(t, 0, stats.ByAccessStatus["expired"])
	assert.Len(t, stats.ByAccessStatus, 3)
}

func TestBuildAdminRestaurant(t *testing.T) {
	r := &restaurants.Restaurant{ID: "a", Name: "Bistro", Slug: "bistro", TrialEndsAt: at(-time.Hour), CreatedAt: now}
	snap := access.NewResolver(clock.Fixed(now)).Evaluate(nil, r)

	got := BuildAdminRestaurant(r, users.User{Email: "owner@bistro.fr"}, nil, snap, "https://menu.example")

	assert.Equal(t, "expired", got.AccessStatus)
	assert.Equal(t, "free", got.Plan)
	assert.Equal(t, "none", got.Subscription)
	assert.Equal(t, "https://menu.example/m/bistro", got.PublicURL)
	assert.Equal(t, "owner@bistro.fr", got.OwnerEmail)
	assert.Equal(t, "2025-03-10 12:00", got.CreatedAt)
}
