package restaurants

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// IMPORTANT: pass db in, do NOT import menu-app/database here (avoids import cycle).

// ForOwner returns the owner's first restaurant, or nil when they have none.
func ForOwner(db *gorm.DB, ownerID uint) (*Restaurant, error) {
	var r Restaurant
	err := db.Where("owner_id = ?", ownerID).Order("created_at ASC").First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load restaurant for owner %d: %w", ownerID, err)
	}
	return &r, nil
}

// BySlug returns gorm.ErrRecordNotFound (wrapped) for unknown slugs.
func BySlug(db *gorm.DB, slug string) (*Restaurant, error) {
	var r Restaurant
	if err := db.Where("slug = ?", slug).First(&r).Error; err != nil {
		return nil, fmt.Errorf("load restaurant %q: %w", slug, err)
	}
	return &r, nil
}

// SchedulesFor returns schedules in evaluation order. The order is the
// tie-break between overlapping windows, so it must be stable.
func SchedulesFor(db *gorm.DB, restaurantID string) ([]MenuSchedule, error) {
	var list []MenuSchedule
	if err := db.Where("restaurant_id = ?", restaurantID).
		Order("sort_index ASC, created_at ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}
	return list, nil
}

// CategoriesWithItems loads the menu in display order.
func CategoriesWithItems(db *gorm.DB, restaurantID string) ([]Category, error) {
	var list []Category
	if err := db.Where("restaurant_id = ?", restaurantID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("available = ?", true).Order("sort_index ASC")
		}).
		Order("sort_index ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return list, nil
}

// CategoryIDsFor returns the ids of the restaurant's categories.
func CategoryIDsFor(db *gorm.DB, restaurantID string) ([]string, error) {
	var ids []string
	if err := db.Model(&Category{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("load category ids: %w", err)
	}
	return ids, nil
}

// Location is the zone the restaurant's schedules run in.
func (r *Restaurant) Location(fallback *time.Location) *time.Location {
	if r == nil || r.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}
