package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/vidquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "vidquiz",
	Short: "Quiz generator for educational videos",
	Long:  "Vidquiz turns video transcripts into quizzes: it parses subtitles, generates questions with an LLM, and grades answers with personalized feedback.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIDQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then VIDQUIZ_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
