package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/matching"
	"github.com/jonathan/resume-match/internal/suggestions"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest resume improvements for a specific job",
	Long:  "Compare a resume against a job description and suggest bullet points for missing keywords, learning resources for missing skills, and general enhancements.",
	RunE:  runSuggest,
}

var (
	suggestResume string
	suggestJob    string
	suggestJobURL string
	suggestSeed   int64
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestResume, "resume", "r", "", "Path to resume text file")
	suggestCmd.Flags().StringVarP(&suggestJob, "job", "j", "", "Path to job description text file")
	suggestCmd.Flags().StringVarP(&suggestJobURL, "job-url", "u", "", "URL to fetch job description from")
	suggestCmd.Flags().Int64Var(&suggestSeed, "seed", 0, "Random seed for bullet template selection (0 uses a random seed)")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	resumeText, err := loadResume(suggestResume)
	if err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	jobText, _, err := loadJob(cmd.Context(), suggestJob, suggestJobURL, logger)
	if err != nil {
		return err
	}

	result := matching.Report(resumeText, jobText)

	var rng *rand.Rand
	if suggestSeed != 0 {
		rng = rand.New(rand.NewSource(suggestSeed))
	}
	gen := suggestions.NewGenerator(rng)

	if bullets := gen.ResumeBullets(result.MissingKeywords); bullets != "" {
		fmt.Fprintln(os.Stdout, "SUGGESTED BULLET POINTS:")
		fmt.Fprintln(os.Stdout, bullets)
	}

	if resources := gen.SkillResources(result.MissingSkills); resources != "" {
		fmt.Fprintln(os.Stdout, "\nLEARNING RESOURCES:")
		fmt.Fprintln(os.Stdout, resources)
	}

	if enhancements := suggestions.Enhancements(result.MissingSkills); enhancements != "" {
		fmt.Fprintln(os.Stdout, "\nGENERAL ENHANCEMENTS:")
		fmt.Fprintln(os.Stdout, enhancements)
	}

	if len(result.MissingKeywords) == 0 && len(result.MissingSkills) == 0 {
		fmt.Fprintln(os.Stdout, "No gaps found. The resume already covers the posting's skills and keywords.")
	}
	return nil
}
