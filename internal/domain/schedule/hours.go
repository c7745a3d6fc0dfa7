package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTime  = errors.New("invalid date or time")
	ErrInvalidHours = errors.New("open hour must be before close hour")
)

const (
	dateLayout      = "2006-01-02"
	wallClockLayout = "15:04"
)

// OperatingHours is the daily window during which reservations may start and
// must fully fit, expressed as local wall-clock hours in Location.
type OperatingHours struct {
	open     int
	close    int
	location *time.Location
}

func NewOperatingHours(openHour, closeHour int, location *time.Location) (OperatingHours, error) {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return OperatingHours{}, ErrInvalidHours
	}
	if location == nil {
		location = time.UTC
	}
	return OperatingHours{open: openHour, close: closeHour, location: location}, nil
}

func (h OperatingHours) OpenHour() int            { return h.open }
func (h OperatingHours) CloseHour() int           { return h.close }
func (h OperatingHours) Location() *time.Location { return h.location }

// Contains reports whether t falls at or after opening and strictly before
// closing, in local wall-clock terms.
func (h OperatingHours) Contains(t time.Time) bool {
	hour := t.In(h.location).Hour()
	return hour >= h.open && hour < h.close
}

// FitsWindow reports whether the whole window lies within a single day's
// operating hours: the start is within hours and the end is no later than
// closing time on the start's day.
func (h OperatingHours) FitsWindow(w Window) bool {
	if !h.Contains(w.Start()) {
		return false
	}
	local := w.Start().In(h.location)
	closeAt := time.Date(local.Year(), local.Month(), local.Day(), h.close, 0, 0, 0, h.location)
	return !w.End().After(closeAt)
}

// OpeningOn returns the instant the restaurant opens on the day containing t
// (in the restaurant's location).
func (h OperatingHours) OpeningOn(t time.Time) time.Time {
	local := t.In(h.location)
	return time.Date(local.Year(), local.Month(), local.Day(), h.open, 0, 0, 0, h.location)
}

// ClosingOn returns the instant the restaurant closes on the day containing t.
func (h OperatingHours) ClosingOn(t time.Time) time.Time {
	local := t.In(h.location)
	return time.Date(local.Year(), local.Month(), local.Day(), h.close, 0, 0, 0, h.location)
}

func (h OperatingHours) String() string {
	return fmt.Sprintf("%02d:00-%02d:00 %s", h.open, h.close, h.location)
}

// ToAbsolute combines a calendar date ("2006-01-02") and a wall-clock time
// ("15:04") in the given location into an absolute instant.
func ToAbsolute(date, wallClock string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout+" "+wallClockLayout, date+" "+wallClock, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidTime, date, wallClock)
	}
	return t, nil
}

// SameWallClock returns the instant with the same local hour and minute as t,
// daysAhead days later in t's restaurant-local day. DST shifts are absorbed
// by reconstructing the wall clock through time.Date.
func SameWallClock(t time.Time, daysAhead int, location *time.Location) time.Time {
	local := t.In(location)
	return time.Date(local.Year(), local.Month(), local.Day()+daysAhead,
		local.Hour(), local.Minute(), 0, 0, location)
}
