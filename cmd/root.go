package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/config"
	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mentalmath",
	Short: "Adaptive mental-math trainer",
	Long:  "mentalmath is a terminal trainer that drills mental arithmetic, adapts to weak skills and explains mistakes step by step.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides "+config.EnvDB+" env var)")
	rootCmd.PersistentFlags().String("name", profile.DefaultName, "Learner profile name")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(placementCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func profileName(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("name")
	return name
}
