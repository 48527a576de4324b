package models

import (
	"strings"
)

// ResumeRecord is one evaluated resume. ID is derived from the uploaded file
// name, so a re-upload of the same file name replaces the previous row.
type ResumeRecord struct {
	ID              string  `gorm:"type:text;primaryKey" json:"id"`
	ResumeText      string  `gorm:"type:text" json:"resume_text"`
	JobRequirements string  `gorm:"type:text" json:"job_requirements"`
	JobTitle        string  `gorm:"type:text" json:"job_title"`
	Score           float64 `json:"score"`
}

func (ResumeRecord) TableName() string {
	return "resumes"
}

// RecordColumns is the column order used for exports.
var RecordColumns = []string{"id", "resume_text", "job_requirements", "job_title", "score"}

type RecordFilter struct {
	MinScore float64
	JobTitle string
}

// Matches reports whether rec has at least MinScore and, when JobTitle is set,
// a job title containing it case-insensitively.
func (f RecordFilter) Matches(rec ResumeRecord) bool {
	if rec.Score < f.MinScore {
		return false
	}
	if f.JobTitle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.JobTitle), strings.ToLower(f.JobTitle))
}
