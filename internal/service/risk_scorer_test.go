package service

import (
	"fmt"
	"testing"
	"time"

	"healthcare-qms/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func patientWithFactors(age int, smoking, diabetes, hypertension, obesity, familyHistory bool) *entity.Patient {
	return &entity.Patient{
		DateOfBirth:   time.Date(time.Now().Year()-age, time.March, 15, 0, 0, 0, 0, time.UTC),
		Smoking:       smoking,
		Diabetes:      diabetes,
		Hypertension:  hypertension,
		Obesity:       obesity,
		FamilyHistory: familyHistory,
	}
}

func TestRiskScore_FactorPoints(t *testing.T) {
	tests := []struct {
		name     string
		patient  *entity.Patient
		expected int
	}{
		{"no factors young", patientWithFactors(30, false, false, false, false, false), 0},
		{"smoking only", patientWithFactors(30, true, false, false, false, false), 2},
		{"diabetes only", patientWithFactors(30, false, true, false, false, false), 2},
		{"hypertension only", patientWithFactors(30, false, false, true, false, false), 2},
		{"obesity only", patientWithFactors(30, false, false, false, true, false), 1},
		{"family history only", patientWithFactors(30, false, false, false, false, true), 1},
		{"age over 40", patientWithFactors(45, false, false, false, false, false), 1},
		{"age over 60", patientWithFactors(65, false, false, false, false, false), 2},
		{"age exactly 40", patientWithFactors(40, false, false, false, false, false), 0},
		{"age exactly 60", patientWithFactors(60, false, false, false, false, false), 1},
		{"all factors elderly", patientWithFactors(70, true, true, true, true, true), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RiskScore(tt.patient))
		})
	}
}

func TestRiskScore_FullFactorGrid(t *testing.T) {
	// Score must be the plain sum of factor points plus the age bracket.
	for mask := 0; mask < 32; mask++ {
		smoking := mask&1 != 0
		diabetes := mask&2 != 0
		hypertension := mask&4 != 0
		obesity := mask&8 != 0
		familyHistory := mask&16 != 0

		expected := 0
		if smoking {
			expected += 2
		}
		if diabetes {
			expected += 2
		}
		if hypertension {
			expected += 2
		}
		if obesity {
			expected++
		}
		if familyHistory {
			expected++
		}

		for _, tc := range []struct {
			age      int
			agePoint int
		}{
			{25, 0}, {40, 0}, {41, 1}, {60, 1}, {61, 2}, {80, 2},
		} {
			t.Run(fmt.Sprintf("mask=%d/age=%d", mask, tc.age), func(t *testing.T) {
				patient := patientWithFactors(tc.age, smoking, diabetes, hypertension, obesity, familyHistory)
				assert.Equal(t, expected+tc.agePoint, RiskScore(patient))
			})
		}
	}
}

func TestClassifyRisk_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		patient  *entity.Patient
		expected entity.RiskLevel
	}{
		// score 0
		{"low at zero", patientWithFactors(30, false, false, false, false, false), entity.RiskLevelLow},
		// score 2
		{"low below medium threshold", patientWithFactors(30, true, false, false, false, false), entity.RiskLevelLow},
		// score 3: smoking + family history
		{"medium at threshold", patientWithFactors(30, true, false, false, false, true), entity.RiskLevelMedium},
		// score 4: smoking + diabetes
		{"medium below high threshold", patientWithFactors(30, true, true, false, false, false), entity.RiskLevelMedium},
		// score 5: smoking + diabetes + age>40
		{"high at threshold", patientWithFactors(45, true, true, false, false, false), entity.RiskLevelHigh},
		// score 10
		{"high well past threshold", patientWithFactors(70, true, true, true, true, true), entity.RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRisk(tt.patient))
		})
	}
}

func TestClassifyRisk_AgeAloneNeverExceedsLow(t *testing.T) {
	// Age contributes at most 2 points, below the medium threshold.
	assert.Equal(t, entity.RiskLevelLow, ClassifyRisk(patientWithFactors(90, false, false, false, false, false)))
}
