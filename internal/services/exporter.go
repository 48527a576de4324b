package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"alfredoptarigan/resume-validator/internal/models"
)

const (
	ExportSheetName   = "resumes"
	ExportCSVFileName = "resumes_export.csv"
	ExportXLSXName    = "resumes_export.xlsx"
)

type Exporter interface {
	WriteCSV(w io.Writer, records []models.ResumeRecord) error
	WriteXLSX(w io.Writer, records []models.ResumeRecord) error
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

// WriteCSV writes a header row of models.RecordColumns followed by one row per record.
func (e *exporter) WriteCSV(w io.Writer, records []models.ResumeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.RecordColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.ResumeText,
			rec.JobRequirements,
			rec.JobTitle,
			formatScore(rec.Score),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", rec.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func (e *exporter) WriteXLSX(w io.Writer, records []models.ResumeRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(models.RecordColumns))
	for i, col := range models.RecordColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []any{rec.ID, rec.ResumeText, rec.JobRequirements, rec.JobTitle, rec.Score}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write xlsx row %s: %w", rec.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// formatScore writes the shortest round-trip decimal, keeping a ".0" on whole
// numbers so the score column always reads as a real.
func formatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if math.IsInf(score, 0) || math.IsNaN(score) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
