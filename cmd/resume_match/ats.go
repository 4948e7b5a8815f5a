package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/ats"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Check a resume for applicant tracking system compatibility",
	Long:  "Check a resume for formatting and structure problems that commonly break applicant tracking system parsers.",
	RunE:  runATS,
}

var atsResume string

func init() {
	atsCmd.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to resume text file")
	_ = atsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(atsCmd)
}

func runATS(_ *cobra.Command, _ []string) error {
	text, err := loadResume(atsResume)
	if err != nil {
		return err
	}

	result := ats.Check(text)

	if result.Compatible() {
		fmt.Fprintln(os.Stdout, "ATS CHECK PASSED")
	} else {
		fmt.Fprintln(os.Stdout, "ATS CHECK FOUND ISSUES")
	}

	printSection := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(os.Stdout, "\n%s:\n", header)
		for _, item := range items {
			fmt.Fprintf(os.Stdout, "  - %s\n", item)
		}
	}

	printSection("Issues", result.Issues)
	printSection("Recommendations", result.Recommendations)
	printSection("Strengths", result.Strengths)
	return nil
}
