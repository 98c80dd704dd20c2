package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsdesk/internal/config"
)

// NewExpertsCmd creates the experts command: run the full pipeline once and
// print the expert recommendations.
func NewExpertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experts",
		Short: "Run the full pipeline and print expert recommendations",
		Long: `Fetch news stories from the last 24 hours, select the topics most in
need of expert commentary, and recommend 3 academic experts per topic.
Prints the recommendations as JSON.

Degraded model calls produce placeholder entries tagged with "error": true
instead of failing the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			pipe, err := buildPipeline(cfg)
			if err != nil {
				return err
			}

			report, err := pipe.ExpertsFromNews(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd, report)
		},
	}

	return cmd
}
