package service

import "healthcare-qms/internal/domain/entity"

// Risk factor points. The scale is additive; classification thresholds
// below turn the total into a RiskLevel.
const (
	riskPointsSmoking       = 2
	riskPointsDiabetes      = 2
	riskPointsHypertension  = 2
	riskPointsObesity       = 1
	riskPointsFamilyHistory = 1
	riskPointsAgeOver60     = 2
	riskPointsAgeOver40     = 1

	riskThresholdHigh   = 5
	riskThresholdMedium = 3
)

// RiskScore computes the additive clinical risk score from the patient's
// current attribute snapshot. Pure, no persistence access.
func RiskScore(patient *entity.Patient) int {
	score := 0

	if patient.Smoking {
		score += riskPointsSmoking
	}
	if patient.Diabetes {
		score += riskPointsDiabetes
	}
	if patient.Hypertension {
		score += riskPointsHypertension
	}
	if patient.Obesity {
		score += riskPointsObesity
	}
	if patient.FamilyHistory {
		score += riskPointsFamilyHistory
	}

	age := patient.Age()
	if age > 60 {
		score += riskPointsAgeOver60
	} else if age > 40 {
		score += riskPointsAgeOver40
	}

	return score
}

// ClassifyRisk maps the patient's risk score to a risk level:
// >= 5 high, >= 3 medium, otherwise low.
func ClassifyRisk(patient *entity.Patient) entity.RiskLevel {
	score := RiskScore(patient)

	switch {
	case score >= riskThresholdHigh:
		return entity.RiskLevelHigh
	case score >= riskThresholdMedium:
		return entity.RiskLevelMedium
	default:
		return entity.RiskLevelLow
	}
}
