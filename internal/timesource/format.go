// Package timesource turns a clock mode and the current instant into the
// colon-delimited display string shown by the flip clock.
package timesource

import (
	"errors"
	"fmt"
	"time"
)

// ZeroDisplay is shown by an expired or unparseable countdown.
const ZeroDisplay = "00:00:00"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// ErrInvalidTarget is returned when a countdown target matches none of the
// accepted layouts.
var ErrInvalidTarget = errors.New("invalid countdown target")

// targetLayouts are the only accepted countdown target formats. Each one is
// fixed width, so a value must match its layout length exactly.
var targetLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// IsValidTime reports whether s strictly matches one of the target layouts.
func IsValidTime(s string) bool {
	_, err := ParseTarget(s)
	return err == nil
}

// ParseTarget parses a countdown target in the local time zone.
func ParseTarget(s string) (time.Time, error) {
	for _, layout := range targetLayouts {
		if len(s) != len(layout) {
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
}

// WallClock formats now as HH:mm:ss.
func WallClock(now time.Time) string {
	return now.Format("15:04:05")
}

// CountTime formats an elapsed number of seconds as HH:MM:SS. Hours are not
// wrapped and widen past two digits.
func CountTime(sec int64) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/secondsPerHour, (sec/secondsPerMinute)%60, sec%60)
}

// TimeDiff formats the time remaining until target. Invalid or past targets
// give ZeroDisplay.
func TimeDiff(target string, now time.Time) string {
	t, err := ParseTarget(target)
	if err != nil {
		return ZeroDisplay
	}
	return remaining(t, now)
}

func remaining(target, now time.Time) string {
	diff := target.Sub(now)
	if diff <= 0 {
		return ZeroDisplay
	}
	total := int64(diff / time.Second)
	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	seconds := total % secondsPerMinute
	if days > 0 {
		return fmt.Sprintf("%d:%02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
