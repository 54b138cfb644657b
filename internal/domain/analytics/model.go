package analytics

import "time"

// DailyView counts public menu views for one restaurant on one local
// calendar day. Day is stored as midnight UTC of that date.
type DailyView struct {
	RestaurantID string    `gorm:"type:uuid;primaryKey" json:"-"`
	Day          time.Time `gorm:"type:date;primaryKey" json:"day"`
	Views        int64     `gorm:"not null" json:"views"`
}

// DayOf is the calendar day of at in loc, as stored in DailyView.Day.
func DayOf(at time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := at.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
