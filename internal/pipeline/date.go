package pipeline

import (
	"fmt"
	"time"
)

// for tests
var timeNow = time.Now

// DateLabel formats a date the way run reports expect it, e.g.
// "27th August, 2026".
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d%s %s, %d", t.Day(), ordinalSuffix(t.Day()), t.Month(), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
