package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nanobanana-fans/nanobanana/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize nanobanana configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
