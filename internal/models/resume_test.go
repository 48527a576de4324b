package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordFilter_Matches(t *testing.T) {
	rec := ResumeRecord{ID: "C-resume1", JobTitle: "Backend Engineer", Score: 79.9}

	testCases := []struct {
		name   string
		filter RecordFilter
		want   bool
	}{
		{name: "no filter", filter: RecordFilter{}, want: true},
		{name: "score below minimum", filter: RecordFilter{MinScore: 80}, want: false},
		{name: "score equal to minimum", filter: RecordFilter{MinScore: 79.9}, want: true},
		{name: "title substring any case", filter: RecordFilter{JobTitle: "engineer"}, want: true},
		{name: "title upper case filter", filter: RecordFilter{JobTitle: "BACKEND"}, want: true},
		{name: "title mismatch", filter: RecordFilter{JobTitle: "analyst"}, want: false},
		{name: "both must hold", filter: RecordFilter{MinScore: 80, JobTitle: "engineer"}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(rec))
		})
	}
}

func TestNewSections(t *testing.T) {
	s := NewSections()
	assert.Len(t, s, 4)
	for _, b := range SectionOrder {
		assert.NotNil(t, s[b])
		assert.Empty(t, s[b])
	}
}
