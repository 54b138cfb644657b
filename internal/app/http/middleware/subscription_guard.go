package middleware

import (
	"net/http"

	"menu-app/database"
	"menu-app/internal/app/metrics"
	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
)

// RequireFullAccess lets pro and trial owners through. Expired owners keep
// read access elsewhere but cannot change their menu.
func RequireFullAccess(now clock.Func) gin.HandlerFunc {
	resolver := access.NewResolver(now)

	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		rest, err := restaurants.ForOwner(database.DB, userID)
		if err != nil {
			logging.FromContext(c).WithError(err).Error("access guard: load restaurant")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
			return
		}
		sub, err := subscriptions.ForUser(database.DB, userID)
		if err != nil {
			logging.FromContext(c).WithError(err).Error("access guard: load subscription")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
			return
		}

		status := resolver.Status(sub, rest)
		metrics.RecordAccessEvaluation(string(status))

		if status == access.StatusExpired {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":  "Your trial has ended. Upgrade to Pro to keep editing your menu.",
				"status": status,
			})
			return
		}

		c.Set("access_status", string(status))
		c.Next()
	}
}
