package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"newsdesk/internal/config"
)

// NewAnalyzeCmd creates the analyze command: run fetch plus topic selection
// once and print the result.
func NewAnalyzeCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch recent news and select topics needing expert commentary",
		Long: `Fetch news stories from the last 24 hours and ask the model to select
the 3 topics that would most benefit from academic expert commentary.
Prints the analysis as JSON.

Examples:
  newsdesk analyze
  newsdesk analyze --category "climate policy"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			pipe, err := buildPipeline(cfg)
			if err != nil {
				return err
			}

			analysis, err := pipe.Analysis(cmd.Context(), category)
			if err != nil {
				return err
			}

			return printJSON(cmd, analysis)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category phrase to search instead of generic news")

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
