package analytics

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordView adds one view to the restaurant's counter for the local day of at.
func RecordView(db *gorm.DB, restaurantID string, at time.Time, loc *time.Location) error {
	row := DailyView{RestaurantID: restaurantID, Day: DayOf(at, loc), Views: 1}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"views": gorm.Expr("daily_views.views + 1")}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// ViewsSince returns stored days from from (inclusive), oldest first. Days
// without views have no row.
func ViewsSince(db *gorm.DB, restaurantID string, from time.Time) ([]DailyView, error) {
	var rows []DailyView
	if err := db.Where("restaurant_id = ? AND day >= ?", restaurantID, from).
		Order("day ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}
	return rows, nil
}

// FillDays returns exactly days entries ending on last, with zero for days
// that have no row.
func FillDays(rows []DailyView, last time.Time, days int) []DailyView {
	byDay := make(map[time.Time]int64, len(rows))
	for _, r := range rows {
		byDay[r.Day.UTC()] += r.Views
	}

	out := make([]DailyView, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := last.AddDate(0, 0, -i)
		out = append(out, DailyView{Day: d, Views: byDay[d]})
	}
	return out
}
