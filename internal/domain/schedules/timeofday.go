package schedules

import (
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseClock turns "HH:MM" into minutes since midnight. ok is false for
// anything that is not two numeric fields within 00:00..23:59.
func ParseClock(s string) (minutes int, ok bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return pad2(minutes/60) + ":" + pad2(minutes%60)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// window holds a parsed schedule interval.
type window struct {
	start, end int
}

func parseWindow(start, end string) (window, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return window{}, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return window{}, false
	}
	return window{start: s, end: e}, true
}

func (w window) overnight() bool {
	return w.end < w.start
}

// contains treats the window as [start, end), wrapping midnight when end < start.
func (w window) contains(minute int) bool {
	if w.overnight() {
		return minute >= w.start || minute < w.end
	}
	return w.start <= minute && minute < w.end
}
