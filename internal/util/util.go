// Package util holds small formatting helpers shared by logs.
package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration for operators, e.g. "1h", "1h30m", "5m10s", "45s".
// Durations above a day keep a day component ("2d3h"). Sub-second values round to seconds.
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration < 0 {
		return "-" + FormatDuration(-duration)
	}

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	const day = 24 * time.Hour
	if duration >= day {
		d := int(duration / day)
		h := int((duration % day).Hours())

		return fmt.Sprintf("%dd%dh", d, h)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh%dm", h, m)
}
