package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		current  AppointmentStatus
		next     AppointmentStatus
		expected bool
	}{
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, true},
		{"scheduled to cancelled", AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{"scheduled to scheduled", AppointmentStatusScheduled, AppointmentStatusScheduled, false},
		{"completed is absorbing", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is absorbing", AppointmentStatusCancelled, AppointmentStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.current}
			assert.Equal(t, tt.expected, a.CanTransitionTo(tt.next))
		})
	}
}

func TestAppointment_IsScheduled(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentStatusScheduled}).IsScheduled())
	assert.False(t, (&Appointment{Status: AppointmentStatusCompleted}).IsScheduled())
	assert.False(t, (&Appointment{Status: AppointmentStatusCancelled}).IsScheduled())
}
