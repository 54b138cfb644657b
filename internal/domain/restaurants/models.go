package restaurants

import (
	"time"
)

// DefaultTrialDuration applies when a restaurant has no explicit trial_ends_at.
const DefaultTrialDuration = 14 * 24 * time.Hour

type Restaurant struct {
	ID      string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID uint   `gorm:"not null;index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Slug     string `gorm:"not null;uniqueIndex:idx_restaurants_slug" json:"slug"`
	Timezone string `gorm:"column:timezone" json:"timezone"` // IANA name, empty = server default

	// legacy rows have no trial_ends_at; see TrialEnd
	TrialEndsAt *time.Time `gorm:"column:trial_ends_at" json:"trial_ends_at"`

	Categories []Category     `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE;" json:"categories,omitempty"`
	Schedules  []MenuSchedule `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE;" json:"schedules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrialEnd is trial_ends_at when set, otherwise created_at + 14 days.
func (r *Restaurant) TrialEnd() time.Time {
	if r.TrialEndsAt != nil {
		return *r.TrialEndsAt
	}
	return r.CreatedAt.Add(DefaultTrialDuration)
}

type Category struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RestaurantID string `gorm:"type:uuid;not null;index:idx_categories_restaurant_sort,priority:1" json:"-"`
	SortIndex    int    `gorm:"not null;default:0;index:idx_categories_restaurant_sort,priority:2" json:"sort_index"`

	Name  string     `gorm:"not null" json:"name"`
	Items []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CategoryID string `gorm:"type:uuid;not null;index" json:"-"`
	SortIndex  int    `gorm:"not null;default:0" json:"sort_index"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `gorm:"not null;default:0" json:"price_cents"`
	Available   bool   `gorm:"not null" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuSchedule is a recurring weekly window [StartTime, EndTime) on each of
// DaysOfWeek. List order (SortIndex) decides which schedule wins on overlap.
type MenuSchedule struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RestaurantID string `gorm:"type:uuid;not null;index:idx_schedules_restaurant_sort,priority:1" json:"-"`
	SortIndex    int    `gorm:"not null;index:idx_schedules_restaurant_sort,priority:2" json:"sort_index"`

	Name string `gorm:"not null" json:"name"`
	// no default tag: gorm replaces a zero value with the column default on insert
	IsActive    bool     `gorm:"not null" json:"is_active"`
	DaysOfWeek  []int    `gorm:"type:jsonb;serializer:json;not null" json:"days_of_week"` // 0=Sunday
	StartTime   string   `gorm:"type:varchar(5);not null" json:"start_time"`              // "HH:MM"
	EndTime     string   `gorm:"type:varchar(5);not null" json:"end_time"`
	CategoryIDs []string `gorm:"column:category_ids;type:jsonb;serializer:json;not null" json:"category_ids"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasDay reports whether the schedule applies on weekday d.
func (s MenuSchedule) HasDay(d time.Weekday) bool {
	for _, v := range s.DaysOfWeek {
		if v == int(d) {
			return true
		}
	}
	return false
}

// HasCategory reports whether id is visible while the schedule is active.
func (s MenuSchedule) HasCategory(id string) bool {
	for _, v := range s.CategoryIDs {
		if v == id {
			return true
		}
	}
	return false
}
