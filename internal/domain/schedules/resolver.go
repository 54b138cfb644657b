package schedules

import (
	"time"

	"menu-app/internal/domain/restaurants"
	"menu-app/internal/platform/clock"
)

// Resolver decides which menu schedule is live right now. It keeps no state
// between calls; the current instant comes from the injected clock and is
// read in loc.
//
// Overnight windows (22:00-02:00) only match on the day they start: at 01:30
// on Sunday a Saturday-only late-night schedule is not active.
type Resolver struct {
	now clock.Func
	loc *time.Location
}

func NewResolver(now clock.Func, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{now: clock.OrSystem(now), loc: loc}
}

// Location returns the zone schedules are evaluated in.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

func (r *Resolver) localNow() time.Time {
	return r.now().In(r.loc)
}

// ActiveSchedule returns the first schedule, in list order, that is switched
// on, applies today and contains the current minute. Overlaps are not an
// error: the earlier entry wins.
func (r *Resolver) ActiveSchedule(list []restaurants.MenuSchedule) *restaurants.MenuSchedule {
	return activeAt(r.localNow(), list)
}

// FilterCategories keeps only the categories of the active schedule. With no
// active schedule every category is returned unchanged.
func (r *Resolver) FilterCategories(categories []restaurants.Category, list []restaurants.MenuSchedule) ([]restaurants.Category, *restaurants.MenuSchedule) {
	active := r.ActiveSchedule(list)
	if active == nil {
		return categories, nil
	}

	filtered := make([]restaurants.Category, 0, len(categories))
	for _, c := range categories {
		if active.HasCategory(c.ID) {
			filtered = append(filtered, c)
		}
	}
	return filtered, active
}

// NextChangeTime is the earliest boundary later today at which the set of
// matching schedules can change, or nil when none is left today. Boundaries
// past midnight are not considered; callers poll again tomorrow.
func (r *Resolver) NextChangeTime(list []restaurants.MenuSchedule) *time.Time {
	now := r.localNow()
	current := minuteOfDay(now)

	next := -1
	consider := func(m int) {
		if m > current && (next < 0 || m < next) {
			next = m
		}
	}

	for _, s := range list {
		if !s.IsActive || !s.HasDay(now.Weekday()) {
			continue
		}
		w, ok := parseWindow(s.StartTime, s.EndTime)
		if !ok {
			continue
		}
		consider(w.start)
		if !w.overnight() {
			consider(w.end)
		}
	}

	if next < 0 {
		return nil
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), next/60, next%60, 0, 0, r.loc)
	return &at
}

func activeAt(now time.Time, list []restaurants.MenuSchedule) *restaurants.MenuSchedule {
	current := minuteOfDay(now)
	weekday := now.Weekday()

	for i := range list {
		s := &list[i]
		if !s.IsActive || !s.HasDay(weekday) {
			continue
		}
		w, ok := parseWindow(s.StartTime, s.EndTime)
		if !ok {
			// malformed times never match
			continue
		}
		if w.contains(current) {
			return s
		}
	}
	return nil
}
