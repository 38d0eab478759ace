package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/dnovais/cvlens"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	analyzeJSON    bool
	analyzePretty  bool
	analyzeNoCache bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze one resume file",
	Long: `Parses a resume file and prints the analysis.

By default a human-readable summary is printed; use --json for the full
structured result.

Examples:
  cvlens analyze resume.pdf
  cvlens analyze --json --pretty resume.pdf
  cvlens analyze --no-cache resume.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Indent JSON output")
	analyzeCmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "Skip the result cache")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	analyzer, err := cvlens.New(cfg)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var opts []cvlens.ParseOption
	if analyzeNoCache {
		opts = append(opts, cvlens.WithoutCache())
	}

	doc, err := analyzer.Parse(ctx, args[0], opts...)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", args[0], err)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		if analyzePretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(doc)
	}

	printSummary(doc)
	return nil
}

func printSummary(doc *cvlens.ParsedDocument) {
	fmt.Printf("Overall score: %d/100 (confidence %.2f)\n",
		doc.QualityMetrics.OverallScore, doc.Confidence)
	fmt.Printf("Pages: %d  Sections: %d  Characters: %d\n",
		doc.PageCount, doc.SectionCount, doc.CharacterCount)

	if doc.Contact.Name != "" {
		fmt.Printf("\nName:  %s\n", doc.Contact.Name)
	}
	if doc.Contact.Email != "" {
		fmt.Printf("Email: %s\n", doc.Contact.Email)
	}
	if doc.Contact.Phone != "" {
		fmt.Printf("Phone: %s\n", doc.Contact.Phone)
	}

	if doc.SkillAnalysis.TotalSkills > 0 {
		fmt.Printf("\nSkills (%d detected", doc.SkillAnalysis.TotalSkills)
		if doc.SkillAnalysis.HighConfidence > 0 {
			fmt.Printf(", %d high confidence", doc.SkillAnalysis.HighConfidence)
		}
		fmt.Println("):")

		categories := make([]string, 0, len(doc.Skills))
		for cat := range doc.Skills {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		for _, cat := range categories {
			fmt.Printf("  %s:", cat)
			for _, rec := range doc.Skills[cat] {
				fmt.Printf(" %s(%.1f)", rec.Name, rec.Confidence)
			}
			fmt.Println()
		}
	}

	recs := doc.QualityMetrics.Recommendations
	recs = append(recs, doc.SkillAnalysis.Recommendations...)
	if len(recs) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range recs {
			fmt.Printf("  - %s\n", r)
		}
	}
}
