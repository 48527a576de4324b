package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/resume-validator/internal/models"
)

type ResumeRepository interface {
	Upsert(record *models.ResumeRecord) error
	FindAll() ([]models.ResumeRecord, error)
	FindFiltered(filter models.RecordFilter) ([]models.ResumeRecord, error)
	Count() (int64, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Upsert inserts record or replaces every column of the row with the same id.
func (r *resumeRepository) Upsert(record *models.ResumeRecord) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert resume %s: %w", record.ID, err)
	}

	return nil
}

func (r *resumeRepository) FindAll() ([]models.ResumeRecord, error) {
	var records []models.ResumeRecord
	if err := r.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}

	return records, nil
}

// FindFiltered narrows by score in SQL; the title match runs in Go so that
// lower-casing is Unicode aware and the filter text is never read as a LIKE pattern.
func (r *resumeRepository) FindFiltered(filter models.RecordFilter) ([]models.ResumeRecord, error) {
	var rows []models.ResumeRecord
	err := r.db.
		Where("score >= ?", filter.MinScore).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter resumes: %w", err)
	}

	records := make([]models.ResumeRecord, 0, len(rows))
	for _, rec := range rows {
		if filter.Matches(rec) {
			records = append(records, rec)
		}
	}

	return records, nil
}

func (r *resumeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ResumeRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	return count, nil
}
