package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/resume-validator/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would otherwise get its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.ResumeRecord{}))
	return db
}

func TestResumeRepository_UpsertReplacesRow(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(&models.ResumeRecord{
		ID:              "C-resume1",
		ResumeText:      "first",
		JobRequirements: "go sql",
		JobTitle:        "Backend Engineer",
		Score:           40,
	}))
	require.NoError(t, repo.Upsert(&models.ResumeRecord{
		ID:              "C-resume1",
		ResumeText:      "second",
		JobRequirements: "python",
		JobTitle:        "Data Analyst",
		Score:           85.5,
	}))

	records, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.ResumeRecord{
		ID:              "C-resume1",
		ResumeText:      "second",
		JobRequirements: "python",
		JobTitle:        "Data Analyst",
		Score:           85.5,
	}, records[0])

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestResumeRepository_FindFiltered(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t))
	seed := []models.ResumeRecord{
		{ID: "C-a", JobTitle: "Backend Engineer", Score: 79.9},
		{ID: "C-b", JobTitle: "Data Analyst", Score: 92},
		{ID: "C-c", JobTitle: "Frontend ENGINEER", Score: 55},
		{ID: "C-d", JobTitle: "100%_Remote Engineer", Score: 10},
	}
	for i := range seed {
		require.NoError(t, repo.Upsert(&seed[i]))
	}

	testCases := []struct {
		name    string
		filter  models.RecordFilter
		wantIDs []string
	}{
		{
			name:    "everything",
			filter:  models.RecordFilter{},
			wantIDs: []string{"C-a", "C-b", "C-c", "C-d"},
		},
		{
			name:    "min score excludes just below",
			filter:  models.RecordFilter{MinScore: 80},
			wantIDs: []string{"C-b"},
		},
		{
			name:    "min score inclusive",
			filter:  models.RecordFilter{MinScore: 79.9},
			wantIDs: []string{"C-a", "C-b"},
		},
		{
			name:    "title case insensitive",
			filter:  models.RecordFilter{JobTitle: "engineer"},
			wantIDs: []string{"C-a", "C-c", "C-d"},
		},
		{
			name:    "title with like metacharacters",
			filter:  models.RecordFilter{JobTitle: "0%_r"},
			wantIDs: []string{"C-d"},
		},
		{
			name:    "score and title",
			filter:  models.RecordFilter{MinScore: 50, JobTitle: "Engineer"},
			wantIDs: []string{"C-a", "C-c"},
		},
		{
			name:    "nothing matches",
			filter:  models.RecordFilter{JobTitle: "designer"},
			wantIDs: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := repo.FindFiltered(tc.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(records))
			for _, rec := range records {
				ids = append(ids, rec.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestResumeRepository_CountEmpty(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
