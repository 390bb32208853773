package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanobanana-fans/nanobanana/internal/server"
	"github.com/nanobanana-fans/nanobanana/internal/sitemap"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print or write the sitemap",
	Long:  `Generates sitemap.xml (or the image sitemap, JSON listing or robots.txt) for the current catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		gen := sitemap.New(server.SiteFor(cfg), catalog)

		var write func(io.Writer) error
		switch format {
		case "xml":
			write = gen.WriteXML
		case "image":
			write = gen.WriteImageXML
		case "json":
			write = gen.WriteJSON
		case "robots":
			write = gen.WriteRobots
		default:
			return fmt.Errorf("unknown format %q (want xml, image, json or robots)", format)
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			return write(os.Stdout)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		if err := write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", out, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
		return nil
	},
}

func init() {
	sitemapCmd.Flags().String("format", "xml", "xml, image, json or robots")
	sitemapCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(sitemapCmd)
}
