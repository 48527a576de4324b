package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-validator/internal/models"
)

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	vec, _ := args.Get(0).([]float32)
	return vec, args.Error(1)
}

func (m *mockEmbedder) Model() string {
	return "mock-embed"
}

type mockResumeRepository struct {
	mock.Mock
}

func (m *mockResumeRepository) Upsert(record *models.ResumeRecord) error {
	return m.Called(record).Error(0)
}

func (m *mockResumeRepository) FindAll() ([]models.ResumeRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]models.ResumeRecord)
	return records, args.Error(1)
}

func (m *mockResumeRepository) FindFiltered(filter models.RecordFilter) ([]models.ResumeRecord, error) {
	args := m.Called(filter)
	records, _ := args.Get(0).([]models.ResumeRecord)
	return records, args.Error(1)
}

func (m *mockResumeRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// hashEmbedder maps text to a deterministic bag-of-letters vector.
type hashEmbedder struct{}

func (hashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, 26)
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			vec[r-'a']++
		}
		if r >= 'A' && r <= 'Z' {
			vec[r-'A']++
		}
	}
	return vec, nil
}

func (hashEmbedder) Model() string { return "hash" }
