package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mantasj/gidas/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gidas",
	Short: "AI tutoring backend for Lithuanian secondary-school students",
	Long:  "Gidas — conversational AI tutoring service: subject tutors, a study guide persona and personalized recommendations.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GIDAS_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GIDAS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
