package cmd

import (
	"fmt"

	"github.com/avalder/pathwise/internal/app"
	"github.com/avalder/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "Spaced-repetition and adaptive learning-path engine",
	Long:  "Pathwise — scheduling engine that decides what a learner should study next and when to review what they already learned.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to JSON content catalog (default: built-in seed catalog)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp builds the wired application for a CLI command.
func openApp(cmd *cobra.Command, withoutLLM bool) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	catalog, _ := cmd.Flags().GetString("catalog")
	return app.New(cmd.Context(), app.Options{
		DBPath:      dbPath,
		CatalogPath: catalog,
		WithoutLLM:  withoutLLM,
	})
}
