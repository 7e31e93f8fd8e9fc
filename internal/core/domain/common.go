package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ClockLayout is the wire and storage format for times of day.
const ClockLayout = "15:04"

// ParseDate parses a strict YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ClockTime is a time of day without a date, minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a strict HH:MM time of day.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return ClockTime{}, err
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
