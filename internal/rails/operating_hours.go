package rails

import (
	"math"
	"time"
)

// OperatingPolicy describes when a rail accepts payments for processing.
type OperatingPolicy string

const (
	PolicyAlwaysOpen OperatingPolicy = "24/7"
	PolicyBusiness   OperatingPolicy = "business"
)

// OperatingHours is a rail's processing window. The business policy covers
// Monday to Friday, [OpenHour, CloseHour) in Location.
type OperatingHours struct {
	Policy    OperatingPolicy
	Location  *time.Location
	OpenHour  int
	CloseHour int
}

// AlwaysOpen returns the 24/7 policy.
func AlwaysOpen() OperatingHours {
	return OperatingHours{Policy: PolicyAlwaysOpen, Location: time.UTC}
}

// BusinessHours returns the Mon–Fri 09:00–17:00 policy in loc (UTC when nil).
func BusinessHours(loc *time.Location) OperatingHours {
	if loc == nil {
		loc = time.UTC
	}
	return OperatingHours{Policy: PolicyBusiness, Location: loc, OpenHour: 9, CloseHour: 17}
}

func (h OperatingHours) location() *time.Location {
	if h.Location == nil {
		return time.UTC
	}
	return h.Location
}

// IsOperating reports whether the rail processes payments at now.
func (h OperatingHours) IsOperating(now time.Time) bool {
	if h.Policy != PolicyBusiness {
		return true
	}
	local := now.In(h.location())
	if !isWeekday(local) {
		return false
	}
	return local.Hour() >= h.OpenHour && local.Hour() < h.CloseHour
}

// HoursUntilOperating returns the whole hours, rounded up, until the next window opens.
// It is zero while the rail is operating.
func (h OperatingHours) HoursUntilOperating(now time.Time) float64 {
	if h.IsOperating(now) {
		return 0
	}
	local := now.In(h.location())
	next := time.Date(local.Year(), local.Month(), local.Day(), h.OpenHour, 0, 0, 0, h.location())
	if !local.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	for !isWeekday(next) {
		next = next.AddDate(0, 0, 1)
	}
	return math.Ceil(next.Sub(local).Hours())
}

func isWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}
