package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/vatsync/internal/fetcher"
	"github.com/sells-group/vatsync/internal/rates"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch, normalize, merge and write the rates dataset",
	Long: `Fetch both upstream datasets, normalize them into the unified schema,
merge them (the EU VAT dataset wins on collision), and write the result as
indented JSON. Any failure aborts the run; nothing is retried and no partial
output is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(
			zap.String("command", "sync"),
			zap.String("run_id", uuid.New().String()),
		)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.Output.Path
		}

		rawDir := cfg.Output.RawDir
		if rawDir != "" {
			if err := os.MkdirAll(rawDir, 0o755); err != nil {
				return eris.Wrapf(err, "sync: create raw dir %s", rawDir)
			}
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   time.Duration(cfg.HTTP.TimeoutSecs) * time.Second,
		})

		log.Info("starting sync",
			zap.String("sales_tax_url", cfg.Sources.SalesTaxURL),
			zap.String("eu_vat_url", cfg.Sources.EUVATURL),
			zap.String("output", out),
		)

		p := rates.NewPipeline(f)
		merged, err := p.Run(ctx, rates.Options{
			SalesTaxURL: cfg.Sources.SalesTaxURL,
			EUVATURL:    cfg.Sources.EUVATURL,
			OutputPath:  out,
			RawDir:      rawDir,
		})
		if err != nil {
			return eris.Wrap(err, "sync")
		}

		fmt.Printf("Wrote %d countries to %s\n", len(merged), out)
		return nil
	},
}

func init() {
	syncCmd.Flags().String("out", "", "output path (default from config)")
	rootCmd.AddCommand(syncCmd)
}
