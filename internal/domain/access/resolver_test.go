package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func restaurantCreatedAt(created time.Time) *restaurants.Restaurant {
	return &restaurants.Restaurant{CreatedAt: created}
}

func resolverAt(now time.Time) *Resolver {
	return NewResolver(clock.Fixed(now))
}

func pro() *subscriptions.Subscription {
	return &subscriptions.Subscription{Plan: subscriptions.PlanPro, Status: subscriptions.StatusActive}
}

func TestIsPro(t *testing.T) {
	cases := []struct {
		name string
		sub  *subscriptions.Subscription
		want bool
	}{
		{"nil", nil, false},
		{"basic active", pro(), true},
		{"basic past_due", &subscriptions.Subscription{Plan: "basic", Status: "past_due"}, false},
		{"basic paused", &subscriptions.Subscription{Plan: "basic", Status: "paused"}, false},
		{"basic canceled", &subscriptions.Subscription{Plan: "basic", Status: "canceled"}, false},
		{"free active", &subscriptions.Subscription{Plan: "free", Status: "active"}, false},
		{"other active", &subscriptions.Subscription{Plan: "premium", Status: "active"}, false},
		{"case sensitive", &subscriptions.Subscription{Plan: "Basic", Status: "active"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPro(tc.sub))
			assert.Equal(t, tc.want, resolverAt(t0).IsPro(tc.sub))
		})
	}
}

func TestTrialFallsBackToCreatedAtPlus14Days(t *testing.T) {
	rest := restaurantCreatedAt(t0)

	almost := t0.Add(13*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second)
	r := resolverAt(almost)
	assert.True(t, r.IsInTrial(rest))
	assert.Equal(t, 1, r.TrialDaysRemaining(rest))
	assert.Equal(t, StatusTrial, r.Status(nil, rest))

	r = resolverAt(t0.Add(14 * 24 * time.Hour))
	assert.False(t, r.IsInTrial(rest), "boundary is strict")
	assert.Equal(t, 0, r.TrialDaysRemaining(rest))
	assert.Equal(t, StatusExpired, r.Status(nil, rest))
}

func TestExplicitTrialEndWins(t *testing.T) {
	end := t0.Add(30 * 24 * time.Hour)
	rest := &restaurants.Restaurant{CreatedAt: t0, TrialEndsAt: &end}

	r := resolverAt(t0.Add(20 * 24 * time.Hour))
	assert.True(t, r.IsInTrial(rest))
	assert.Equal(t, 10, r.TrialDaysRemaining(rest))
}

func TestTrialDaysRemainingCeiling(t *testing.T) {
	end := t0.Add(72 * time.Hour)
	rest := &restaurants.Restaurant{CreatedAt: t0, TrialEndsAt: &end}

	cases := []struct {
		now  time.Time
		want int
	}{
		{t0, 3},
		{t0.Add(time.Millisecond), 3},
		{t0.Add(24 * time.Hour), 2},
		{end.Add(-time.Millisecond), 1},
		{end, 0},
		{end.Add(48 * time.Hour), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resolverAt(tc.now).TrialDaysRemaining(rest), "now=%s", tc.now)
	}
}

func TestNilRestaurantIsLeastPrivileged(t *testing.T) {
	r := resolverAt(t0)

	assert.False(t, r.IsInTrial(nil))
	assert.Equal(t, 0, r.TrialDaysRemaining(nil))
	assert.Equal(t, StatusExpired, r.Status(nil, nil))
	assert.False(t, r.HasFullAccess(nil, nil))
	assert.True(t, r.ShouldShowWatermark(nil, nil))
	assert.False(t, r.ShouldShowTrialWarning(nil, nil))
}

func TestProOverridesExpiredTrial(t *testing.T) {
	rest := restaurantCreatedAt(t0)
	r := resolverAt(t0.Add(365 * 24 * time.Hour))

	assert.Equal(t, StatusPro, r.Status(pro(), rest))
	assert.Equal(t, StatusPro, r.Status(pro(), nil))
	assert.True(t, r.HasFullAccess(pro(), rest))
	assert.False(t, r.ShouldShowWatermark(pro(), rest))
}

func TestNonProSubscriptionFallsThroughToTrial(t *testing.T) {
	rest := restaurantCreatedAt(t0)
	pastDue := &subscriptions.Subscription{Plan: "basic", Status: "past_due"}

	assert.Equal(t, StatusTrial, resolverAt(t0.Add(time.Hour)).Status(pastDue, rest))
	assert.Equal(t, StatusExpired, resolverAt(t0.Add(15*24*time.Hour)).Status(pastDue, rest))
}

func TestWatermarkOnlyWhenExpired(t *testing.T) {
	rest := restaurantCreatedAt(t0)

	inTrial := resolverAt(t0.Add(time.Hour))
	expired := resolverAt(t0.Add(20 * 24 * time.Hour))

	assert.False(t, inTrial.ShouldShowWatermark(nil, rest))
	assert.False(t, expired.ShouldShowWatermark(pro(), rest))
	assert.True(t, expired.ShouldShowWatermark(nil, rest))
}

func TestTrialWarningThreshold(t *testing.T) {
	rest := restaurantCreatedAt(t0)
	end := rest.TrialEnd()

	fourLeft := resolverAt(end.Add(-4 * 24 * time.Hour))
	require.Equal(t, 4, fourLeft.TrialDaysRemaining(rest))
	assert.False(t, fourLeft.ShouldShowTrialWarning(nil, rest))

	threeLeft := resolverAt(end.Add(-3 * 24 * time.Hour))
	require.Equal(t, 3, threeLeft.TrialDaysRemaining(rest))
	assert.True(t, threeLeft.ShouldShowTrialWarning(nil, rest))

	// pro owners never get the banner, even in the last days of the trial window
	assert.False(t, threeLeft.ShouldShowTrialWarning(pro(), rest))

	expired := resolverAt(end)
	assert.False(t, expired.ShouldShowTrialWarning(nil, rest))
}

func TestEvaluateSnapshot(t *testing.T) {
	rest := restaurantCreatedAt(t0)
	r := resolverAt(t0.Add(12 * 24 * time.Hour))

	snap := r.Evaluate(nil, rest)
	assert.Equal(t, StatusTrial, snap.Status)
	assert.Equal(t, 2, snap.DaysRemaining)
	assert.True(t, snap.FullAccess)
	assert.False(t, snap.Watermark)
	assert.True(t, snap.TrialWarning)
	require.NotNil(t, snap.TrialEndsAt)
	assert.Equal(t, t0.Add(14*24*time.Hour), *snap.TrialEndsAt)
	assert.Contains(t, snap.Capabilities, CapSchedules)

	none := r.Evaluate(nil, nil)
	assert.Equal(t, StatusExpired, none.Status)
	assert.Nil(t, none.TrialEndsAt)
	assert.True(t, none.Watermark)
	assert.Empty(t, none.Capabilities)
}

func TestNilClockUsesWallClock(t *testing.T) {
	r := NewResolver(nil)
	rest := restaurantCreatedAt(time.Now())

	assert.True(t, r.IsInTrial(rest))
	assert.Equal(t, 14, r.TrialDaysRemaining(rest))
}
