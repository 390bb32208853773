package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanobanana-fans/nanobanana/internal/config"
)

var (
	cfgFile    string
	verbose    bool
	contentDir string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "nanobanana",
	Short: "Prompt library and tutorial site for Nano Banana image editing",
	Long: `nanobanana serves the Nano Banana prompt library and tutorials as a
website, exports it as static files, and exposes the catalog to AI agents
over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content directory (defaults to the embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
}
