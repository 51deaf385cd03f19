package rotation

import (
	"math"
	"time"
)

// WeekNumber returns the rotation week of t in t's location
//
// week = ceil((days + weekday(Jan 1) + 1) / 7), days counted as whole 24h
// spans since local midnight on Jan 1. Weeks roll over on Sunday. This is not
// ISO 8601: the last days of December land in week 53 and the first days of
// January in week 1 of the next year even when they share a calendar week.
// Existing rotations depend on this exact formula.
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := math.Floor(float64(t.Sub(jan1)) / float64(24*time.Hour))
	return int(math.Ceil((days + float64(jan1.Weekday()) + 1) / 7))
}

// WeekSeed returns year*100 + week for t
func WeekSeed(t time.Time) int {
	return t.Year()*100 + WeekNumber(t)
}

// NextRefresh returns local midnight at the start of the week after t
// On a Sunday this is the following Sunday
func NextRefresh(t time.Time) time.Time {
	days := 7 - int(t.Weekday())
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, t.Location())
}
