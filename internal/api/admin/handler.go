package admin

import (
	"net/http"
	"time"

	"menu-app/config"
	"menu-app/database"
	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/domain/users"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
)

var Now clock.Func = clock.System

type AdminRestaurant struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	PublicURL     string     `json:"public_url"`
	OwnerEmail    string     `json:"owner_email"`
	Plan          string     `json:"plan"`
	Subscription  string     `json:"subscription_status"`
	AccessStatus  string     `json:"access_status"`
	TrialEndsAt   *time.Time `json:"trial_ends_at"`
	DaysRemaining int        `json:"days_remaining"`
	CreatedAt     string     `json:"created_at"`
}

type AdminStats struct {
	TotalRestaurants int            `json:"total_restaurants"`
	ByAccessStatus   map[string]int `json:"by_access_status"`
	TrialWarnings    int            `json:"trial_warnings"`
}

// loadOwners fetches every restaurant with its owner's subscription, keyed
// by owner id.
func loadOwners() ([]restaurants.Restaurant, map[uint]users.User, map[uint]*subscriptions.Subscription, error) {
	var rests []restaurants.Restaurant
	if err := database.DB.Order("created_at DESC").Find(&rests).Error; err != nil {
		return nil, nil, nil, err
	}

	var owners []users.User
	if err := database.DB.Find(&owners).Error; err != nil {
		return nil, nil, nil, err
	}
	var subs []subscriptions.Subscription
	if err := database.DB.Find(&subs).Error; err != nil {
		return nil, nil, nil, err
	}

	byID := make(map[uint]users.User, len(owners))
	for _, u := range owners {
		byID[u.ID] = u
	}
	return rests, byID, access.IndexByUser(subs), nil
}

func BuildAdminRestaurant(r *restaurants.Restaurant, owner users.User, sub *subscriptions.Subscription, snap access.Snapshot, appURL string) AdminRestaurant {
	out := AdminRestaurant{
		ID:            r.ID,
		Name:          r.Name,
		Slug:          r.Slug,
		PublicURL:     restaurants.BuildPublicURL(appURL, r.Slug),
		OwnerEmail:    owner.Email,
		Plan:          subscriptions.PlanFree,
		Subscription:  subscriptions.StatusNone,
		AccessStatus:  string(snap.Status),
		TrialEndsAt:   snap.TrialEndsAt,
		DaysRemaining: snap.DaysRemaining,
		CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04"),
	}
	if sub != nil {
		out.Plan = sub.Plan
		out.Subscription = sub.Status
	}
	return out
}

func ListRestaurants(c *gin.Context) {
	rests, owners, subs, err := loadOwners()
	if err != nil {
		logging.FromContext(c).WithError(err).Error("admin: load restaurants")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurants"})
		return
	}

	resolver := access.NewResolver(clock.Fixed(Now()))
	result := make([]AdminRestaurant, 0, len(rests))
	for i := range rests {
		r := &rests[i]
		sub := subs[r.OwnerID]
		result = append(result, BuildAdminRestaurant(r, owners[r.OwnerID], sub, resolver.Evaluate(sub, r), config.APP_URL))
	}

	c.JSON(http.StatusOK, result)
}

// CountStats tallies restaurants per access status at one instant.
func CountStats(rests []restaurants.Restaurant, subs map[uint]*subscriptions.Subscription, now time.Time) AdminStats {
	counts := access.Tally(rests, subs, now)
	return AdminStats{
		TotalRestaurants: len(rests),
		ByAccessStatus:   counts.ByStatus,
		TrialWarnings:    counts.TrialWarnings,
	}
}

func GetAdminStats(c *gin.Context) {
	rests, _, subs, err := loadOwners()
	if err != nil {
		logging.FromContext(c).WithError(err).Error("admin: load stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, CountStats(rests, subs, Now()))
}
