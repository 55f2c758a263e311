package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/vatsync/internal/taxdb"
)

var calcCmd = &cobra.Command{
	Use:   "calc <amount>",
	Short: "Apply a jurisdiction's standard rate to an amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return eris.Wrapf(err, "calc: parse amount %q", args[0])
		}

		country, _ := cmd.Flags().GetString("country")
		state, _ := cmd.Flags().GetString("state")

		db, err := taxdb.Load(cfg.Output.Path)
		if err != nil {
			return eris.Wrap(err, "calc: load dataset (run `vatsync sync` first)")
		}

		result, err := db.Calculate(amount, country, state)
		if err != nil {
			return eris.Wrap(err, "calc")
		}

		fmt.Printf("rate: %g\ntax: %.2f\ntotal: %.2f\n", result.Rate, result.Tax, result.Total)
		return nil
	},
}

func init() {
	calcCmd.Flags().String("country", "", "country code (required)")
	calcCmd.Flags().String("state", "", "state/province code")
	_ = calcCmd.MarkFlagRequired("country")
	rootCmd.AddCommand(calcCmd)
}
