package service

import (
	"regexp"
	"testing"
	"time"

	"healthcare-qms/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCatalog() []entity.Test {
	codes := []entity.TestCode{
		entity.TestCodeMammogram,
		entity.TestCodeUSGAbdomen,
		entity.TestCodeXRayChest,
		entity.TestCodeECG,
		entity.TestCodeTMT,
		entity.TestCodeEcho2D,
		entity.TestCodePFT,
	}
	catalog := make([]entity.Test, 0, len(codes))
	for i, code := range codes {
		catalog = append(catalog, entity.Test{ID: uint(i + 1), Code: code})
	}
	return catalog
}

func assignmentPatient(gender string, age int, risk entity.RiskLevel) *entity.Patient {
	return &entity.Patient{
		ID:          42,
		Gender:      gender,
		DateOfBirth: time.Date(time.Now().Year()-age, time.June, 1, 0, 0, 0, 0, time.UTC),
		RiskLevel:   risk,
	}
}

func assignedCodes(t *testing.T, assigned []entity.PatientTest, catalog []entity.Test) []entity.TestCode {
	t.Helper()
	byID := make(map[uint]entity.TestCode, len(catalog))
	for _, test := range catalog {
		byID[test.ID] = test.Code
	}
	codes := make([]entity.TestCode, 0, len(assigned))
	for _, pt := range assigned {
		code, ok := byID[pt.TestID]
		require.True(t, ok, "assigned test id %d not in catalog", pt.TestID)
		codes = append(codes, code)
	}
	return codes
}

func TestAssignTests_RuleScenarios(t *testing.T) {
	catalog := fullCatalog()

	tests := []struct {
		name     string
		patient  *entity.Patient
		expected []entity.TestCode
	}{
		{
			name:     "young low risk male gets baseline panel",
			patient:  assignmentPatient(entity.GenderMale, 25, entity.RiskLevelLow),
			expected: []entity.TestCode{entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest, entity.TestCodePFT},
		},
		{
			name:     "minor gets chest xray only",
			patient:  assignmentPatient(entity.GenderMale, 12, entity.RiskLevelLow),
			expected: []entity.TestCode{entity.TestCodeXRayChest},
		},
		{
			name:    "female over forty adds mammogram",
			patient: assignmentPatient(entity.GenderFemale, 40, entity.RiskLevelLow),
			expected: []entity.TestCode{
				entity.TestCodeMammogram, entity.TestCodeUSGAbdomen,
				entity.TestCodeXRayChest, entity.TestCodePFT,
			},
		},
		{
			name:    "male over forty gets no mammogram",
			patient: assignmentPatient(entity.GenderMale, 45, entity.RiskLevelLow),
			expected: []entity.TestCode{
				entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest, entity.TestCodePFT,
			},
		},
		{
			name:    "medium risk adds ecg",
			patient: assignmentPatient(entity.GenderMale, 30, entity.RiskLevelMedium),
			expected: []entity.TestCode{
				entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest,
				entity.TestCodeECG, entity.TestCodePFT,
			},
		},
		{
			name:    "low risk fifty gets ecg by age",
			patient: assignmentPatient(entity.GenderMale, 50, entity.RiskLevelLow),
			expected: []entity.TestCode{
				entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest,
				entity.TestCodeECG, entity.TestCodePFT,
			},
		},
		{
			name:    "low risk sixty adds tmt by age",
			patient: assignmentPatient(entity.GenderMale, 60, entity.RiskLevelLow),
			expected: []entity.TestCode{
				entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest,
				entity.TestCodeECG, entity.TestCodeTMT, entity.TestCodePFT,
			},
		},
		{
			name:    "high risk adds cardiac panel",
			patient: assignmentPatient(entity.GenderMale, 30, entity.RiskLevelHigh),
			expected: []entity.TestCode{
				entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest,
				entity.TestCodeECG, entity.TestCodeTMT, entity.TestCodeEcho2D,
				entity.TestCodePFT,
			},
		},
		{
			name:    "high risk elderly female gets everything",
			patient: assignmentPatient(entity.GenderFemale, 65, entity.RiskLevelHigh),
			expected: []entity.TestCode{
				entity.TestCodeMammogram, entity.TestCodeUSGAbdomen,
				entity.TestCodeXRayChest, entity.TestCodeECG,
				entity.TestCodeTMT, entity.TestCodeEcho2D, entity.TestCodePFT,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assigned, missing := AssignTests(tt.patient, catalog)

			assert.Empty(t, missing)
			assert.Equal(t, tt.expected, assignedCodes(t, assigned, catalog))
			for _, pt := range assigned {
				assert.Equal(t, tt.patient.ID, pt.PatientID)
				assert.Equal(t, entity.TestStatusPending, pt.Status)
			}
		})
	}
}

func TestAssignTests_MissingCatalogEntrySkipsRule(t *testing.T) {
	// Catalog without the two cardiac entries an elderly high-risk
	// patient would otherwise receive.
	catalog := fullCatalog()
	trimmed := make([]entity.Test, 0, len(catalog))
	for _, test := range catalog {
		if test.Code == entity.TestCodeECG || test.Code == entity.TestCodeEcho2D {
			continue
		}
		trimmed = append(trimmed, test)
	}

	patient := assignmentPatient(entity.GenderMale, 70, entity.RiskLevelHigh)
	assigned, missing := AssignTests(patient, trimmed)

	assert.Equal(t, []entity.TestCode{entity.TestCodeECG, entity.TestCodeEcho2D}, missing)
	assert.Equal(t, []entity.TestCode{
		entity.TestCodeUSGAbdomen, entity.TestCodeXRayChest,
		entity.TestCodeTMT, entity.TestCodePFT,
	}, assignedCodes(t, assigned, trimmed))
}

func TestAssignTests_OrderIndependentOfCatalogOrder(t *testing.T) {
	catalog := fullCatalog()
	reversed := make([]entity.Test, len(catalog))
	for i, test := range catalog {
		reversed[len(catalog)-1-i] = test
	}

	patient := assignmentPatient(entity.GenderFemale, 65, entity.RiskLevelHigh)
	fromOrdered, _ := AssignTests(patient, catalog)
	fromReversed, _ := AssignTests(patient, reversed)

	assert.Equal(t, fromOrdered, fromReversed)
}

func TestGeneratePatientUID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^P\d{8}[0-9A-F]{8}$`)

	uid := GeneratePatientUID()
	assert.Regexp(t, pattern, uid)
	assert.Equal(t, "P"+time.Now().UTC().Format("20060102"), uid[:9])
}

func TestGeneratePatientUID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		uid := GeneratePatientUID()
		assert.False(t, seen[uid], "duplicate uid %s", uid)
		seen[uid] = true
	}
}
