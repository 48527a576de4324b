package models

type ScoreBand string

const (
	BandGood    ScoreBand = "good"
	BandPartial ScoreBand = "partial"
	BandPoor    ScoreBand = "poor"
)

func (b ScoreBand) Message() string {
	switch b {
	case BandGood:
		return "This resume is a good match for the job requirements!"
	case BandPartial:
		return "This resume partially matches the job requirements."
	default:
		return "This resume does not meet the job requirements."
	}
}
