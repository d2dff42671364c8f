package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatient_Age(t *testing.T) {
	currentYear := time.Now().Year()

	p := &Patient{DateOfBirth: time.Date(currentYear-35, time.December, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 35, p.Age())

	newborn := &Patient{DateOfBirth: time.Date(currentYear, time.January, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 0, newborn.Age())
}

func TestPatient_IsFemale(t *testing.T) {
	assert.True(t, (&Patient{Gender: "female"}).IsFemale())
	assert.True(t, (&Patient{Gender: "Female"}).IsFemale())
	assert.True(t, (&Patient{Gender: "FEMALE"}).IsFemale())
	assert.False(t, (&Patient{Gender: "male"}).IsFemale())
	assert.False(t, (&Patient{Gender: ""}).IsFemale())
}

func TestPatient_FullName(t *testing.T) {
	p := &Patient{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", p.FullName())
}
