package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_IsOccupiedBy(t *testing.T) {
	occupantType := OccupantPatientTest
	occupantID := uint(9)

	held := &Room{
		IsAvailable:  false,
		OccupantType: &occupantType,
		OccupantID:   &occupantID,
	}
	assert.True(t, held.IsOccupiedBy(OccupantPatientTest, 9))
	assert.False(t, held.IsOccupiedBy(OccupantPatientTest, 10))
	assert.False(t, held.IsOccupiedBy(OccupantAppointment, 9))

	free := &Room{IsAvailable: true}
	assert.False(t, free.IsOccupiedBy(OccupantPatientTest, 9))
}
