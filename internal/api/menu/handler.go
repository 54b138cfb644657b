package menu

import (
	"errors"
	"net/http"

	"menu-app/config"
	"menu-app/database"
	"menu-app/internal/app/metrics"
	"menu-app/internal/domain/analytics"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var Now clock.Func = clock.System

// GetPublicMenu serves the QR menu and counts the view. Expired restaurants
// stay visible with a watermark.
func GetPublicMenu(c *gin.Context) {
	log := logging.FromContext(c)

	rest, err := restaurants.BySlug(database.DB, c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("menu: load restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	in := MenuInput{Restaurant: rest}
	if in.Categories, err = restaurants.CategoriesWithItems(database.DB, rest.ID); err != nil {
		log.WithError(err).Error("menu: load categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	if in.Schedules, err = restaurants.SchedulesFor(database.DB, rest.ID); err != nil {
		log.WithError(err).Error("menu: load schedules")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	if in.Subscription, err = subscriptions.ForUser(database.DB, rest.OwnerID); err != nil {
		log.WithError(err).Error("menu: load subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	at := clock.OrSystem(Now)()
	fallback := config.Current.Location()
	resp, status := BuildMenuResponse(in, clock.Fixed(at), fallback)
	metrics.RecordAccessEvaluation(string(status))

	metrics.RecordMenuView()
	if err := analytics.RecordView(database.DB, rest.ID, at, rest.Location(fallback)); err != nil {
		log.WithError(err).Warn("menu: record view")
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resp)
}
