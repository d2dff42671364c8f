package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitTimeMinutes(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)

	t.Run("nil before a room is assigned", func(t *testing.T) {
		assert.Nil(t, WaitTimeMinutes(nil, now))
	})

	t.Run("whole minutes since assignment", func(t *testing.T) {
		assignedAt := now.Add(-25*time.Minute - 40*time.Second)
		minutes := WaitTimeMinutes(&assignedAt, now)
		require.NotNil(t, minutes)
		assert.Equal(t, 25, *minutes)
	})

	t.Run("zero right at assignment", func(t *testing.T) {
		assignedAt := now
		minutes := WaitTimeMinutes(&assignedAt, now)
		require.NotNil(t, minutes)
		assert.Equal(t, 0, *minutes)
	})
}

func TestMinutesBetween(t *testing.T) {
	from := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	to := from.Add(45 * time.Minute)

	t.Run("nil when either end is missing", func(t *testing.T) {
		assert.Nil(t, MinutesBetween(nil, &to))
		assert.Nil(t, MinutesBetween(&from, nil))
		assert.Nil(t, MinutesBetween(nil, nil))
	})

	t.Run("whole minutes between stamps", func(t *testing.T) {
		minutes := MinutesBetween(&from, &to)
		require.NotNil(t, minutes)
		assert.Equal(t, 45, *minutes)
	})
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		expected  float64
	}{
		{"zero total", 0, 0, 0},
		{"none completed", 0, 10, 0},
		{"all completed", 10, 10, 100},
		{"one third rounds to one decimal", 1, 3, 33.3},
		{"two thirds rounds up", 2, 3, 66.7},
		{"half", 5, 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompletionRate(tt.completed, tt.total))
		})
	}
}

func TestRoundMinutes(t *testing.T) {
	assert.Equal(t, 12.3, RoundMinutes(12.34))
	assert.Equal(t, 12.4, RoundMinutes(12.35))
	assert.Equal(t, 0.0, RoundMinutes(0))
}
