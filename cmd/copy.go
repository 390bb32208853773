package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nanobanana-fans/nanobanana/internal/clipboard"
	"github.com/nanobanana-fans/nanobanana/internal/db"
	"github.com/nanobanana-fans/nanobanana/internal/engagement"
)

var copyCmd = &cobra.Command{
	Use:   "copy <slug>",
	Short: "Copy a prompt to the system clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		p, err := catalog.Prompt(args[0])
		if err != nil {
			return fmt.Errorf("prompt %q: %w", args[0], err)
		}

		writer, err := clipboard.DetectCommandWriter()
		if err != nil {
			return err
		}

		var opts []clipboard.CopyOption
		if noPromo, _ := cmd.Flags().GetBool("no-promotion"); noPromo {
			opts = append(opts, clipboard.WithoutPromotion())
		}

		ctx := context.Background()
		copier := clipboard.NewCopier(writer, clipboard.TerminalNotifier{Out: os.Stderr},
			clipboard.ToastsFromConfig(cfg.Toast), resetDelayOf(cfg.Clipboard.ResetDelayMS))
		defer copier.Close()
		if err := copier.Copy(ctx, p.Prompt, opts...); err != nil {
			return err
		}

		if record, _ := cmd.Flags().GetBool("record"); record {
			database, err := db.Open(cfg.DBPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: copy not recorded: %v\n", err)
			} else {
				defer database.Close()
				if _, err := engagement.NewStore(database).Record(ctx, p.Slug, engagement.SourceCLI); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: copy not recorded: %v\n", err)
				}
			}
		}

		// Keep the copied state for the reset delay.
		return copier.WaitReset(ctx)
	},
}

func init() {
	copyCmd.Flags().Bool("no-promotion", false, "show the plain success toast instead of the Pro promotion")
	copyCmd.Flags().Bool("record", true, "count the copy in the engagement database")
	rootCmd.AddCommand(copyCmd)
}
