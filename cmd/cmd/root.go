package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newsdesk/cmd/handlers"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "newsdesk finds news topics worth expert commentary and drafts the outreach",
	Long: `newsdesk fetches recent news stories, selects the topics that would
most benefit from academic expert commentary, recommends experts for each
topic, and drafts outreach emails requesting their input.

Run 'newsdesk serve' to expose the pipeline over HTTP, or use the
'analyze' and 'experts' commands to run it once from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(handlers.NewServeCmd())
	rootCmd.AddCommand(handlers.NewAnalyzeCmd())
	rootCmd.AddCommand(handlers.NewExpertsCmd())
}
