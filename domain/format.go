package domain

import (
	"fmt"
	"time"
)

// FormatRemaining renders a remaining duration for replies and audit lines.
// nil means permanent.
func FormatRemaining(d *time.Duration) string {
	if d == nil {
		return "Permanent"
	}
	if *d <= 0 {
		return "Expired"
	}
	return FormatDuration(*d)
}

// FormatDuration renders the largest two units: "2d 3h", "1h 5m", "12m", "40s".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	minutes := int(d / time.Minute)
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
}
