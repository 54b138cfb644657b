package schedules

import (
	"errors"
	"fmt"
	"strings"

	"menu-app/internal/domain/restaurants"
	domain "menu-app/internal/domain/schedules"
)

type ScheduleInput struct {
	Name        string   `json:"name"`
	IsActive    *bool    `json:"is_active"`
	DaysOfWeek  []int    `json:"days_of_week"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	CategoryIDs []string `json:"category_ids"`
	SortIndex   *int     `json:"sort_index"`
}

var (
	errNameRequired = errors.New("name is required")
	errNoDays       = errors.New("days_of_week must contain at least one day")
	errEmptyWindow  = errors.New("start_time and end_time must differ")
)

// validate normalises in and checks it against the restaurant's categories.
// Days are deduplicated and kept in input order.
func (in *ScheduleInput) validate(ownedCategoryIDs []string) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return errNameRequired
	}

	if len(in.DaysOfWeek) == 0 {
		return errNoDays
	}
	seen := make(map[int]bool, len(in.DaysOfWeek))
	days := make([]int, 0, len(in.DaysOfWeek))
	for _, d := range in.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday %d (0=Sunday .. 6=Saturday)", d)
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	in.DaysOfWeek = days

	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	start, ok := domain.ParseClock(in.StartTime)
	if !ok {
		return fmt.Errorf("invalid start_time %q, expected HH:MM", in.StartTime)
	}
	end, ok := domain.ParseClock(in.EndTime)
	if !ok {
		return fmt.Errorf("invalid end_time %q, expected HH:MM", in.EndTime)
	}
	if start == end {
		return errEmptyWindow
	}

	owned := make(map[string]bool, len(ownedCategoryIDs))
	for _, id := range ownedCategoryIDs {
		owned[id] = true
	}
	ids := make([]string, 0, len(in.CategoryIDs))
	for _, id := range in.CategoryIDs {
		if !owned[id] {
			return fmt.Errorf("unknown category %q", id)
		}
		ids = append(ids, id)
	}
	in.CategoryIDs = ids
	return nil
}

func (in ScheduleInput) apply(s *restaurants.MenuSchedule) {
	s.Name = in.Name
	s.DaysOfWeek = in.DaysOfWeek
	s.StartTime = in.StartTime
	s.EndTime = in.EndTime
	s.CategoryIDs = in.CategoryIDs
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	if in.SortIndex != nil {
		s.SortIndex = *in.SortIndex
	}
}
