package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-match/internal/ingestion"
	"github.com/jonathan/resume-match/internal/keywords"
	"github.com/jonathan/resume-match/internal/textnorm"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract top keywords and phrases from a document",
	RunE:  runKeywords,
}

var (
	keywordsFile string
	keywordsTop  int
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsFile, "file", "f", "", "Path to document to extract keywords from")
	keywordsCmd.Flags().IntVarP(&keywordsTop, "top", "n", keywords.DefaultTopN, "Number of keywords to extract")
	_ = keywordsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	text, err := ingestion.FromFile(keywordsFile)
	if err != nil {
		return err
	}

	found := keywords.Extract(textnorm.Clean(text), keywordsTop)
	if len(found) == 0 {
		fmt.Fprintln(os.Stdout, "No keywords found.")
		return nil
	}

	terms := make([]string, 0, len(found))
	for term := range found {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	fmt.Fprintf(os.Stdout, "Top %d keywords:\n", len(terms))
	for _, term := range terms {
		fmt.Fprintf(os.Stdout, "  - %s\n", term)
	}
	return nil
}
