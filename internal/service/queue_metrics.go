package service

import (
	"math"
	"time"
)

// WaitTimeMinutes returns the whole minutes a queue entry has been
// waiting since it was assigned a room, or nil when no room has been
// assigned yet (wait time is undefined before that).
func WaitTimeMinutes(assignedAt *time.Time, now time.Time) *int {
	if assignedAt == nil {
		return nil
	}
	minutes := int(now.Sub(*assignedAt).Minutes())
	return &minutes
}

// MinutesBetween returns the whole minutes between two timestamps, or
// nil when either is missing.
func MinutesBetween(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	minutes := int(to.Sub(*from).Minutes())
	return &minutes
}

// CompletionRate returns completed/total as a percentage rounded to one
// decimal place. Zero when total is zero.
func CompletionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(completed) / float64(total) * 100
	return math.Round(rate*10) / 10
}

// RoundMinutes rounds an average expressed in minutes to one decimal place.
func RoundMinutes(minutes float64) float64 {
	return math.Round(minutes*10) / 10
}
