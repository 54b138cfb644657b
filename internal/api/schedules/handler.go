package schedules

import (
	"errors"
	"net/http"
	"time"

	"menu-app/config"
	"menu-app/database"
	"menu-app/internal/domain/restaurants"
	domain "menu-app/internal/domain/schedules"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/logging"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var Now clock.Func = clock.System

func ownerRestaurant(c *gin.Context) (*restaurants.Restaurant, bool) {
	rest, err := restaurants.ForOwner(database.DB, c.GetUint("user_id"))
	if err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: load restaurant")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return nil, false
	}
	if rest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	return rest, true
}

func bindInput(c *gin.Context, rest *restaurants.Restaurant) (*ScheduleInput, bool) {
	var in ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return nil, false
	}

	owned, err := restaurants.CategoryIDsFor(database.DB, rest.ID)
	if err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: load categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return nil, false
	}
	if err := in.validate(owned); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &in, true
}

func findSchedule(c *gin.Context, rest *restaurants.Restaurant) (*restaurants.MenuSchedule, bool) {
	var s restaurants.MenuSchedule
	err := database.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("id"), rest.ID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return nil, false
	}
	if err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: load schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return nil, false
	}
	return &s, true
}

func ListSchedules(c *gin.Context) {
	rest, ok := ownerRestaurant(c)
	if !ok {
		return
	}
	list, err := restaurants.SchedulesFor(database.DB, rest.ID)
	if err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateSchedule appends the schedule after the existing ones unless a
// sort_index is given.
func CreateSchedule(c *gin.Context) {
	rest, ok := ownerRestaurant(c)
	if !ok {
		return
	}
	in, ok := bindInput(c, rest)
	if !ok {
		return
	}

	s := restaurants.MenuSchedule{RestaurantID: rest.ID, IsActive: true}
	if in.SortIndex == nil {
		var count int64
		if err := database.DB.Model(&restaurants.MenuSchedule{}).
			Where("restaurant_id = ?", rest.ID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
			return
		}
		s.SortIndex = int(count)
	}
	in.apply(&s)

	if err := database.DB.Create(&s).Error; err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func UpdateSchedule(c *gin.Context) {
	rest, ok := ownerRestaurant(c)
	if !ok {
		return
	}
	s, ok := findSchedule(c, rest)
	if !ok {
		return
	}
	in, ok := bindInput(c, rest)
	if !ok {
		return
	}
	in.apply(s)

	if err := database.DB.Save(s).Error; err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func DeleteSchedule(c *gin.Context) {
	rest, ok := ownerRestaurant(c)
	if !ok {
		return
	}
	s, ok := findSchedule(c, rest)
	if !ok {
		return
	}
	if err := database.DB.Delete(s).Error; err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}
	c.Status(http.StatusNoContent)
}

type ActiveScheduleResponse struct {
	Timezone   string                    `json:"timezone"`
	LocalTime  string                    `json:"local_time"`
	Active     *restaurants.MenuSchedule `json:"active"`
	NextChange *time.Time                `json:"next_change"`
}

// BuildActiveScheduleResponse evaluates everything at the single instant at.
func BuildActiveScheduleResponse(at time.Time, loc *time.Location, list []restaurants.MenuSchedule) ActiveScheduleResponse {
	r := domain.NewResolver(clock.Fixed(at), loc)
	return ActiveScheduleResponse{
		Timezone:   r.Location().String(),
		LocalTime:  at.In(r.Location()).Format("15:04"),
		Active:     r.ActiveSchedule(list),
		NextChange: r.NextChangeTime(list),
	}
}

// GetActiveSchedule shows the owner what their public menu is serving now.
func GetActiveSchedule(c *gin.Context) {
	rest, ok := ownerRestaurant(c)
	if !ok {
		return
	}
	list, err := restaurants.SchedulesFor(database.DB, rest.ID)
	if err != nil {
		logging.FromContext(c).WithError(err).Error("schedules: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedules"})
		return
	}

	loc := rest.Location(config.Current.Location())
	c.JSON(http.StatusOK, BuildActiveScheduleResponse(clock.OrSystem(Now)(), loc, list))
}
