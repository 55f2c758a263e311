package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/vatsync/internal/export"
	"github.com/sells-group/vatsync/internal/rates"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the merged dataset in an alternate format",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return eris.New("export: --out is required")
		}

		data, err := os.ReadFile(cfg.Output.Path)
		if err != nil {
			return eris.Wrap(err, "export: read dataset (run `vatsync sync` first)")
		}
		var records map[string]rates.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return eris.Wrap(err, "export: parse dataset")
		}

		switch format {
		case "yaml":
			f, err := os.Create(out)
			if err != nil {
				return eris.Wrapf(err, "export: create %s", out)
			}
			defer f.Close() //nolint:errcheck
			if err := export.WriteYAML(f, records); err != nil {
				return err
			}
		case "csv":
			f, err := os.Create(out)
			if err != nil {
				return eris.Wrapf(err, "export: create %s", out)
			}
			defer f.Close() //nolint:errcheck
			if err := export.WriteCSV(f, records); err != nil {
				return err
			}
		case "xlsx":
			if err := export.WriteXLSX(out, records); err != nil {
				return err
			}
		default:
			return eris.Errorf("export: unknown format %q (want yaml, csv or xlsx)", format)
		}

		fmt.Printf("Exported %d countries to %s\n", len(records), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "csv", "output format: yaml, csv or xlsx")
	exportCmd.Flags().String("out", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}
