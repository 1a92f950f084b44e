package variation

import (
	"math"

	"adsynth-workers/internal/models"
)

const (
	confidenceBase = 60
	confidenceMin  = 30
	confidenceMax  = 99

	hotBonus             = 15
	warmBonus            = 8
	lowCompetitionBonus  = 10
	highCompetitionMalus = 5
	directAngleBonus     = 8

	// hookWeight scales the 0-100 hook total into at most 15 points.
	hookWeight = 0.15
)

// Confidence estimates how well a variant will perform.
func Confidence(p *models.Profile, angleType models.AngleType, hookTotal int) int {
	score := float64(confidenceBase)

	switch p.AwarenessLevel {
	case models.AwarenessHot:
		score += hotBonus
	case models.AwarenessWarm:
		score += warmBonus
	}

	switch p.CompetitionLevel {
	case models.CompetitionLow:
		score += lowCompetitionBonus
	case models.CompetitionHigh:
		score -= highCompetitionMalus
	}

	// Pain and urgency convert the most directly.
	if angleType == models.AnglePain || angleType == models.AngleUrgency {
		score += directAngleBonus
	}

	score += float64(hookTotal) * hookWeight

	return clamp(int(math.Round(score)), confidenceMin, confidenceMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
