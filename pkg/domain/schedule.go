package domain

import (
	"fmt"
	"strings"
	"time"
)

// SendDay is a weekly send day for a profile's newsletter.
type SendDay string

// send days, lowercase to match stored values
const (
	Monday    SendDay = "monday"
	Tuesday   SendDay = "tuesday"
	Wednesday SendDay = "wednesday"
	Thursday  SendDay = "thursday"
	Friday    SendDay = "friday"
	Saturday  SendDay = "saturday"
	Sunday    SendDay = "sunday"
)

var sendDays = map[SendDay]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

// ParseSendDay converts stored text to a SendDay.
func ParseSendDay(s string) (SendDay, error) {
	d := SendDay(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sendDays[d]; !ok {
		return "", fmt.Errorf("invalid send day %q", s)
	}
	return d, nil
}

// Weekday returns the time.Weekday for the send day.
func (d SendDay) Weekday() time.Weekday { return sendDays[d] }

// NextSendTime computes the next occurrence of the profile's send day at the
// given civil time, interpreted in a fixed UTC offset. The result is always
// strictly after now; if today's occurrence has already passed (or is exactly
// now), the following week's occurrence is returned.
func NextSendTime(day SendDay, hour, minute, offsetMinutes int, now time.Time) time.Time {
	loc := time.FixedZone("profile", offsetMinutes*60)
	local := now.In(loc)

	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	daysAhead := (int(day.Weekday()) - int(local.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, daysAhead)

	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate.UTC()
}

// GenerationWindow reports whether now falls on the day before the send day
// in the profile's local time, the point at which a new edition is produced.
func GenerationWindow(day SendDay, offsetMinutes int, now time.Time) bool {
	loc := time.FixedZone("profile", offsetMinutes*60)
	local := now.In(loc)
	return (local.Weekday()+1)%7 == day.Weekday()%7
}
