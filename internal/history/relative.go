package history

import (
	"fmt"
	"time"
)

// RelativeTime renders how long ago t was, relative to now, the way the
// history panel labels entries: "Just now", "5m ago", "3h ago", "2d ago".
// Times in the future read as "Just now".
func RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)

	minutes := int(elapsed / time.Minute)
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	return fmt.Sprintf("%dd ago", hours/24)
}
