package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "same instant", ago: 0, want: "Just now"},
		{name: "seconds", ago: 59 * time.Second, want: "Just now"},
		{name: "future", ago: -time.Minute, want: "Just now"},
		{name: "one minute", ago: time.Minute, want: "1m ago"},
		{name: "minutes", ago: 59*time.Minute + 59*time.Second, want: "59m ago"},
		{name: "one hour", ago: time.Hour, want: "1h ago"},
		{name: "hours", ago: 23 * time.Hour, want: "23h ago"},
		{name: "one day", ago: 24 * time.Hour, want: "1d ago"},
		{name: "days", ago: 10*24*time.Hour + 5*time.Hour, want: "10d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now.Add(-tt.ago), now))
		})
	}
}
