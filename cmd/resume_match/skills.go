package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/skills"
	"github.com/jonathan/resume-match/internal/textnorm"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Extract recognized skills from a document",
	Long:  "Extract skills from a resume or job description using the built-in skill vocabulary and context patterns like \"skilled in X\".",
	RunE:  runSkills,
}

var (
	skillsFile       string
	skillsVocabulary string
	skillsCategories bool
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsFile, "file", "f", "", "Path to document to extract skills from")
	skillsCmd.Flags().StringVar(&skillsVocabulary, "vocabulary", "", "Path to a custom skill vocabulary JSON file")
	skillsCmd.Flags().BoolVar(&skillsCategories, "categories", false, "List vocabulary categories instead of extracting")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	vocab := skills.Default()
	if skillsVocabulary != "" {
		data, err := os.ReadFile(skillsVocabulary)
		if err != nil {
			return fmt.Errorf("failed to read vocabulary file: %w", err)
		}
		vocab, err = skills.LoadVocabulary(data)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	if skillsCategories {
		for _, category := range vocab.Categories() {
			fmt.Fprintf(os.Stdout, "%s (%d skills)\n", category, len(vocab.Skills(category)))
		}
		return nil
	}

	if skillsFile == "" {
		return fmt.Errorf("--file is required")
	}
	text, err := ingestion.FromFile(skillsFile)
	if err != nil {
		return err
	}

	found := vocab.Extract(textnorm.Clean(text))
	if len(found) == 0 {
		fmt.Fprintln(os.Stdout, "No skills found.")
		return nil
	}

	names := make([]string, 0, len(found))
	for skill := range found {
		names = append(names, skill)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stdout, "Found %d skills:\n", len(names))
	for _, name := range names {
		fmt.Fprintf(os.Stdout, "  - %s\n", name)
	}
	return nil
}
