package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/vatsync/internal/taxdb"
)

var getCmd = &cobra.Command{
	Use:   "get <country>",
	Short: "Look up the rate record for a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := taxdb.Load(cfg.Output.Path)
		if err != nil {
			return eris.Wrap(err, "get: load dataset (run `vatsync sync` first)")
		}

		country := args[0]
		state, _ := cmd.Flags().GetString("state")

		if state != "" {
			rate, err := db.Rate(country, state)
			if err != nil {
				return eris.Wrap(err, "get")
			}
			fmt.Printf("%s/%s standard_rate: %g\n", country, state, rate)
			return nil
		}

		rec, err := db.Record(country)
		if err != nil {
			return eris.Wrap(err, "get")
		}
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return eris.Wrap(err, "get: marshal record")
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	getCmd.Flags().String("state", "", "state/province code for sub-national lookup")
	rootCmd.AddCommand(getCmd)
}
