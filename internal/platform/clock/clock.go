package clock

import "time"

// Func returns the current instant. Resolvers take one instead of calling
// time.Now so tests can pin the clock.
type Func func() time.Time

// System is the wall clock.
func System() time.Time {
	return time.Now()
}

// Fixed returns a Func that always reports t.
func Fixed(t time.Time) Func {
	return func() time.Time { return t }
}

// OrSystem returns f, or the wall clock when f is nil.
func OrSystem(f Func) Func {
	if f == nil {
		return System
	}
	return f
}
