package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dnovais/cvlens"
)

//nolint:gochecknoglobals // Cobra boilerplate
var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List cached analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAnalyzer(func(ctx context.Context, a cvlens.Analyzer) error {
			docs, err := a.Documents(ctx)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("no cached documents")
				return nil
			}
			for _, d := range docs {
				fmt.Printf("%4d  %-40s  score %3d  conf %.2f  %s\n",
					d.ID, d.Filename, d.OverallScore, d.Confidence, d.UpdatedAt)
			}
			return nil
		})
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a cached analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}
		return withAnalyzer(func(ctx context.Context, a cvlens.Analyzer) error {
			if err := a.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted document %d\n", id)
			return nil
		})
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(deleteCmd)
}

func withAnalyzer(fn func(context.Context, cvlens.Analyzer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	analyzer, err := cvlens.New(cfg)
	if err != nil {
		return err
	}
	defer analyzer.Close()
	return fn(context.Background(), analyzer)
}
