package analytics

import (
	"net/http"
	"strconv"
	"time"

	"menu-app/config"
	"menu-app/database"
	domain "menu-app/internal/domain/analytics"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
)

var Now clock.Func = clock.System

const (
	defaultDays = 30
	maxDays     = 90
)

type ViewsResponse struct {
	Timezone string             `json:"timezone"`
	Total    int64              `json:"total"`
	Days     []domain.DailyView `json:"days"`
}

// GetMenuViews returns the owner's daily menu views for the last ?days
// local days, today included.
func GetMenuViews(c *gin.Context) {
	log := logging.FromContext(c)

	days := defaultDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		days = n
	}

	rest, err := restaurants.ForOwner(database.DB, c.GetUint("user_id"))
	if err != nil {
		log.WithError(err).Error("analytics: load restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return
	}
	if rest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	loc := rest.Location(config.Current.Location())
	last := domain.DayOf(clock.OrSystem(Now)(), loc)
	rows, err := domain.ViewsSince(database.DB, rest.ID, last.AddDate(0, 0, -(days-1)))
	if err != nil {
		log.WithError(err).Error("analytics: load views")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load views"})
		return
	}

	c.JSON(http.StatusOK, BuildViewsResponse(rows, last, days, loc))
}

func BuildViewsResponse(rows []domain.DailyView, last time.Time, days int, loc *time.Location) ViewsResponse {
	filled := domain.FillDays(rows, last, days)
	var total int64
	for _, d := range filled {
		total += d.Views
	}
	return ViewsResponse{Timezone: loc.String(), Total: total, Days: filled}
}
