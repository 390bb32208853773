package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nanobanana-fans/nanobanana/internal/progress"
	"github.com/nanobanana-fans/nanobanana/internal/server"
	"github.com/nanobanana-fans/nanobanana/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static files",
	Long:  `Renders every page, sitemap and asset into a directory that any static host can serve.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to output_dir from the config)")
	exportCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	exportCmd.Flags().Int("port", 8080, "port for the preview server")
	exportCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	// Exported pages are static, so the page cache and database stay off.
	cfg.Revalidate = 0
	srv, err := server.New(cfg, nil, catalog, server.Options{Quiet: true})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exporter := &site.Exporter{
		Handler:   srv.Router(),
		Catalog:   catalog,
		OutputDir: outputDir,
		PublicDir: cfg.PublicDir,
		Reporter:  progress.NewReporter(),
	}
	n, err := exporter.Export(ctx)
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}
	fmt.Printf("Static site exported: %s (%d files)\n", outputDir, n)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		return site.Preview(ctx, outputDir, port, openBrowser)
	}
	return nil
}
