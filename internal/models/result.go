package models

type EvaluateResponse struct {
	ID        string              `json:"id,omitempty"`
	Pipeline  string              `json:"pipeline"`
	JobTitle  string              `json:"job_title,omitempty"`
	Score     float64             `json:"score"`
	Band      ScoreBand           `json:"band"`
	Message   string              `json:"message"`
	Sections  map[string][]string `json:"sections,omitempty"`
	Persisted bool                `json:"persisted"`
}

type RecordSummary struct {
	ID              string  `json:"id"`
	JobTitle        string  `json:"job_title"`
	JobRequirements string  `json:"job_requirements"`
	Score           float64 `json:"score"`
}

type RecordsResponse struct {
	Total   int64           `json:"total"`
	Count   int             `json:"count"`
	Records []RecordSummary `json:"records"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func NewRecordSummary(rec ResumeRecord) RecordSummary {
	return RecordSummary{
		ID:              rec.ID,
		JobTitle:        rec.JobTitle,
		JobRequirements: rec.JobRequirements,
		Score:           rec.Score,
	}
}
