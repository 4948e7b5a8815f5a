package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/config"
	"github.com/jonathan/resume-match/internal/matching"
	"github.com/jonathan/resume-match/internal/observability"
	"github.com/jonathan/resume-match/internal/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Score a resume against a job description and print a full compatibility report with a score breakdown, matched and missing skills, and actionable improvements.",
	RunE:  runScore,
}

var (
	scoreResume  string
	scoreJob     string
	scoreJobURL  string
	scoreConfig  string
	scoreJSON    bool
	scoreSummary bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text file")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch job description from")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output the report as JSON")
	scoreCmd.Flags().BoolVar(&scoreSummary, "summary", false, "Print a short summary instead of the full report")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	// Config file values act as defaults for unset flags.
	if scoreConfig != "" {
		fileCfg, err := config.LoadConfig(scoreConfig)
		if err != nil {
			return err
		}
		flags := config.Config{Resume: scoreResume, Job: scoreJob, JobURL: scoreJobURL}
		merged := flags.MergeWithDefaults(*fileCfg)
		scoreResume, scoreJob, scoreJobURL = merged.Resume, merged.Job, merged.JobURL
	}

	resumeText, err := loadResume(scoreResume)
	if err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	jobText, jobName, err := loadJob(cmd.Context(), scoreJob, scoreJobURL, logger)
	if err != nil {
		return err
	}

	result := matching.Report(resumeText, jobText)

	switch {
	case scoreJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case scoreSummary:
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchSummary(result)
		printer.PrintBreakdown(result.Result)
		printer.PrintMissing(result)
		return nil
	default:
		rendered := report.Render(result, report.Options{
			ResumeName: filepath.Base(scoreResume),
			JDName:     jobName,
			Now:        time.Now(),
		})
		fmt.Fprintln(os.Stdout, rendered)
		return nil
	}
}
