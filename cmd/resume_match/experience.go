package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/experience"
	"github.com/jonathan/resume-match/internal/ingestion"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Detect years of experience stated in a document",
	RunE:  runExperience,
}

var experienceFile string

func init() {
	experienceCmd.Flags().StringVarP(&experienceFile, "file", "f", "", "Path to document to analyze")
	_ = experienceCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(experienceCmd)
}

func runExperience(_ *cobra.Command, _ []string) error {
	text, err := ingestion.FromFile(experienceFile)
	if err != nil {
		return err
	}

	years := experience.Years(text)
	if years == 0 {
		fmt.Fprintln(os.Stdout, "No years of experience detected.")
		return nil
	}
	fmt.Fprintf(os.Stdout, "Detected %d years of experience.\n", years)
	return nil
}
