package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the content catalog for errors",
	Long:  `Validates prompts, tutorials and page dates: unique slugs and ids, required fields, resolvable related tutorials and table-of-contents anchors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		if err := catalog.Check(); err != nil {
			return fmt.Errorf("content check failed:\n%w", err)
		}
		fmt.Printf("Content OK: %d prompts, %d tutorials\n", len(catalog.Prompts()), len(catalog.Tutorials()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
