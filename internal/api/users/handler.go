package users

import (
	"net/http"

	"menu-app/config"
	"menu-app/database"
	"menu-app/internal/app/metrics"
	"menu-app/internal/domain/access"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/domain/users"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
)

var Now clock.Func = clock.System

type ownerState struct {
	user users.User
	rest *restaurants.Restaurant
	sub  *subscriptions.Subscription
}

func loadOwnerState(c *gin.Context) (*ownerState, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	var st ownerState
	if err := database.DB.First(&st.user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}

	var err error
	if st.rest, err = restaurants.ForOwner(database.DB, userID); err != nil {
		logging.FromContext(c).WithError(err).Error("me: load restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return nil, false
	}
	if st.sub, err = subscriptions.ForUser(database.DB, userID); err != nil {
		logging.FromContext(c).WithError(err).Error("me: load subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return nil, false
	}
	return &st, true
}

func GetMe(c *gin.Context) {
	st, ok := loadOwnerState(c)
	if !ok {
		return
	}

	snap := access.NewResolver(Now).Evaluate(st.sub, st.rest)
	metrics.RecordAccessEvaluation(string(snap.Status))

	c.JSON(http.StatusOK, BuildMeResponse(st.user, st.rest, st.sub, snap, config.APP_URL))
}

func GetAccess(c *gin.Context) {
	st, ok := loadOwnerState(c)
	if !ok {
		return
	}

	snap := access.NewResolver(Now).Evaluate(st.sub, st.rest)
	metrics.RecordAccessEvaluation(string(snap.Status))

	c.JSON(http.StatusOK, BuildAccessDTO(snap))
}
