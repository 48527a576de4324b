package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"alfredoptarigan/resume-validator/internal/config"
	"alfredoptarigan/resume-validator/internal/logger"
	"alfredoptarigan/resume-validator/internal/models"
	"alfredoptarigan/resume-validator/internal/repositories"
	"alfredoptarigan/resume-validator/internal/services"
)

// Writes every stored resume to resumes_export.csv and resumes_export.xlsx
// in the directory given as the first argument, or the working directory.
func main() {
	cfg := config.Load()

	zapLog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	outDir := "."
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		zapLog.Fatal("failed to create output directory", zap.String("dir", outDir), zap.Error(err))
	}

	db, err := config.InitDatabase(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("failed to initialize database", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	records, err := repositories.NewResumeRepository(db).FindAll()
	if err != nil {
		zapLog.Fatal("failed to load resumes", zap.Error(err))
	}

	exporter := services.NewExporter()

	outputs := []struct {
		name  string
		write func(f *os.File, records []models.ResumeRecord) error
	}{
		{
			name: services.ExportCSVFileName,
			write: func(f *os.File, records []models.ResumeRecord) error {
				w := bufio.NewWriter(f)
				if err := exporter.WriteCSV(w, records); err != nil {
					return err
				}
				return w.Flush()
			},
		},
		{
			name: services.ExportXLSXName,
			write: func(f *os.File, records []models.ResumeRecord) error {
				return exporter.WriteXLSX(f, records)
			},
		},
	}

	failCount := 0
	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := writeFile(path, records, out.write); err != nil {
			zapLog.Error("export failed", zap.String("path", path), zap.Error(err))
			failCount++
			continue
		}
		zapLog.Info("export written", zap.String("path", path), zap.Int("records", len(records)))
	}

	if failCount > 0 {
		os.Exit(1)
	}
}

func writeFile(path string, records []models.ResumeRecord, write func(*os.File, []models.ResumeRecord) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f, records); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
