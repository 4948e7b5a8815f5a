package main

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-match/internal/ingestion"
)

// loadResume reads the resume text from a file path.
func loadResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--resume is required")
	}
	text, err := ingestion.FromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load resume: %w", err)
	}
	return text, nil
}

// loadJob reads the job description from a file path or fetches it from a
// URL. Exactly one source must be given; jobName is a short label for
// reports.
func loadJob(ctx context.Context, path, url string, logger *zap.Logger) (text, jobName string, err error) {
	switch {
	case path == "" && url == "":
		return "", "", fmt.Errorf("either --job or --job-url must be provided")
	case path != "" && url != "":
		return "", "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	case path != "":
		text, err = ingestion.FromFile(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to load job description: %w", err)
		}
		return text, filepath.Base(path), nil
	default:
		text, err = ingestion.FromURL(ctx, url, logger)
		if err != nil {
			return "", "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, url, nil
	}
}
