package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanobanana-fans/nanobanana/internal/db"
	"github.com/nanobanana-fans/nanobanana/internal/engagement"
	mcpserver "github.com/nanobanana-fans/nanobanana/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing prompt search, prompt text and tutorials to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		// Copy counting is optional for agents.
		var copies *engagement.Store
		if database, err := db.Open(cfg.DBPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open database %s: %v\n", cfg.DBPath, err)
			fmt.Fprintf(os.Stderr, "Copies will not be counted.\n")
		} else {
			defer database.Close()
			copies = engagement.NewStore(database)
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "nanobanana MCP server started on stdio (prompts=%d, tutorials=%d)\n",
			len(catalog.Prompts()), len(catalog.Tutorials()))

		return mcpserver.NewServer(catalog, copies).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
