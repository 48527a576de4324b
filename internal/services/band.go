package services

import "alfredoptarigan/resume-validator/internal/models"

const (
	GoodMatchThreshold    = 70.0
	PartialMatchThreshold = 50.0
)

// ClassifyScore maps a match score to its band. Lower bounds are inclusive.
func ClassifyScore(score float64) models.ScoreBand {
	switch {
	case score >= GoodMatchThreshold:
		return models.BandGood
	case score >= PartialMatchThreshold:
		return models.BandPartial
	default:
		return models.BandPoor
	}
}
