package converter

import (
	"testing"
	"time"

	"healthcare-qms/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientTestToQueueEntry(t *testing.T) {
	now := time.Date(2026, time.February, 3, 10, 30, 0, 0, time.UTC)
	assignedAt := now.Add(-20 * time.Minute)
	roomNumber := "R101"

	test := &entity.PatientTest{
		ID:         5,
		PatientID:  3,
		Status:     entity.TestStatusInProgress,
		AssignedAt: &assignedAt,
		Patient: entity.Patient{
			ID:        3,
			UniqueID:  "P20260203AB12CD34",
			FirstName: "Jane",
			LastName:  "Doe",
		},
		Test: entity.Test{
			ID:   2,
			Name: "Chest X-Ray",
			Department: entity.Department{
				ID:   1,
				Name: "Radiology",
			},
		},
		Room: &entity.Room{ID: 9, RoomNumber: roomNumber},
	}

	entry := PatientTestToQueueEntry(test, now)

	assert.Equal(t, uint(5), entry.ID)
	assert.Equal(t, "P20260203AB12CD34", entry.UniqueID)
	assert.Equal(t, "Jane Doe", entry.PatientName)
	assert.Equal(t, "Chest X-Ray", entry.TestName)
	assert.Equal(t, "Radiology", entry.Department)
	assert.Equal(t, string(entity.TestStatusInProgress), entry.Status)
	require.NotNil(t, entry.RoomNumber)
	assert.Equal(t, roomNumber, *entry.RoomNumber)
	require.NotNil(t, entry.WaitTime)
	assert.Equal(t, 20, *entry.WaitTime)
}

func TestPatientTestToQueueEntry_BeforeRoomAssignment(t *testing.T) {
	test := &entity.PatientTest{
		ID:        5,
		PatientID: 3,
		Status:    entity.TestStatusPending,
	}

	entry := PatientTestToQueueEntry(test, time.Now())

	assert.Nil(t, entry.WaitTime)
	assert.Nil(t, entry.RoomNumber)
	assert.Empty(t, entry.PatientName)
}

func TestPatientTestToResponse_Nil(t *testing.T) {
	assert.Nil(t, PatientTestToResponse(nil))
}
