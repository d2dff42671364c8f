package service

import (
	"crypto/rand"
	"fmt"
	"time"

	"healthcare-qms/internal/domain/entity"
)

// assignmentRule decides whether one catalog test applies to a patient.
// Rules are independent and additive; evaluation order fixes the order
// of the resulting set for deterministic display downstream.
type assignmentRule struct {
	code    entity.TestCode
	applies func(female bool, age int, risk entity.RiskLevel) bool
}

var assignmentRules = []assignmentRule{
	{
		code: entity.TestCodeMammogram,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return female && age >= 40
		},
	},
	{
		code: entity.TestCodeUSGAbdomen,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return age >= 18
		},
	},
	{
		code: entity.TestCodeXRayChest,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return true
		},
	},
	{
		code: entity.TestCodeECG,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return risk == entity.RiskLevelMedium || risk == entity.RiskLevelHigh || age >= 50
		},
	},
	{
		code: entity.TestCodeTMT,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return risk == entity.RiskLevelHigh || age >= 60
		},
	},
	{
		code: entity.TestCodeEcho2D,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return risk == entity.RiskLevelHigh
		},
	},
	{
		code: entity.TestCodePFT,
		applies: func(female bool, age int, risk entity.RiskLevel) bool {
			return age >= 18
		},
	},
}

// AssignTests evaluates the assignment rules against the patient and the
// supplied catalog, returning pending PatientTests in rule order plus the
// codes of rules whose catalog entry was missing. A missing entry skips
// that rule silently; the caller may log it.
//
// The patient's RiskLevel must already be set (see ClassifyRisk).
func AssignTests(patient *entity.Patient, catalog []entity.Test) ([]entity.PatientTest, []entity.TestCode) {
	byCode := make(map[entity.TestCode]*entity.Test, len(catalog))
	for i := range catalog {
		byCode[catalog[i].Code] = &catalog[i]
	}

	female := patient.IsFemale()
	age := patient.Age()
	risk := patient.RiskLevel

	var assigned []entity.PatientTest
	var missing []entity.TestCode

	for _, rule := range assignmentRules {
		if !rule.applies(female, age, risk) {
			continue
		}
		test, ok := byCode[rule.code]
		if !ok {
			missing = append(missing, rule.code)
			continue
		}
		assigned = append(assigned, entity.PatientTest{
			PatientID: patient.ID,
			TestID:    test.ID,
			Status:    entity.TestStatusPending,
		})
	}

	return assigned, missing
}

// GeneratePatientUID generates a human-readable patient id: P<YYYYMMDD><8 hex>
func GeneratePatientUID() string {
	dateStr := time.Now().UTC().Format("20060102")
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("P%s%08X", dateStr, randomBytes)
}
