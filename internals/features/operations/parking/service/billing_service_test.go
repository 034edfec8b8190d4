package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBilledHours(t *testing.T) {
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"five minutes still pays one hour", 5 * time.Minute, 1},
		{"exactly one hour", time.Hour, 1},
		{"one minute over rounds up", 2*time.Hour + time.Minute, 3},
		{"ninety minutes", 90 * time.Minute, 2},
		{"zero elapsed", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BilledHours(in, in.Add(tt.elapsed)))
		})
	}
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "1 hour(s)", DurationLabel(1))
	assert.Equal(t, "2 hour(s)", DurationLabel(2))
}

func TestFinalPrice(t *testing.T) {
	// 90 minutes at a rate of 10 bills as 2 hours.
	in := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	hours := BilledHours(in, in.Add(90*time.Minute))
	assert.Equal(t, 2, hours)
	assert.Equal(t, 20.0, FinalPrice(hours, 10))
}
