package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientTest_CanTransitionTo(t *testing.T) {
	allStatuses := []TestStatus{
		TestStatusPending, TestStatusInProgress,
		TestStatusCompleted, TestStatusCancelled,
	}

	allowed := map[TestStatus]map[TestStatus]bool{
		TestStatusPending: {
			TestStatusInProgress: true,
			TestStatusCancelled:  true,
		},
		TestStatusInProgress: {
			TestStatusCompleted: true,
			TestStatusCancelled: true,
		},
		TestStatusCompleted: {},
		TestStatusCancelled: {},
	}

	for _, current := range allStatuses {
		for _, next := range allStatuses {
			pt := &PatientTest{Status: current}
			assert.Equal(t, allowed[current][next], pt.CanTransitionTo(next),
				"%s -> %s", current, next)
		}
	}
}

func TestTestStatus_IsTerminal(t *testing.T) {
	assert.False(t, TestStatusPending.IsTerminal())
	assert.False(t, TestStatusInProgress.IsTerminal())
	assert.True(t, TestStatusCompleted.IsTerminal())
	assert.True(t, TestStatusCancelled.IsTerminal())
}

func TestPatientTest_IsActive(t *testing.T) {
	assert.True(t, (&PatientTest{Status: TestStatusPending}).IsActive())
	assert.True(t, (&PatientTest{Status: TestStatusInProgress}).IsActive())
	assert.False(t, (&PatientTest{Status: TestStatusCompleted}).IsActive())
	assert.False(t, (&PatientTest{Status: TestStatusCancelled}).IsActive())
}

func TestPatientTest_IsPending(t *testing.T) {
	assert.True(t, (&PatientTest{Status: TestStatusPending}).IsPending())
	assert.False(t, (&PatientTest{Status: TestStatusInProgress}).IsPending())
}
