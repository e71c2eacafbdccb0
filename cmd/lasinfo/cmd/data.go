package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/lasio"
)

var flagNull float64

var dataCmd = &cobra.Command{
	Use:   "data <file>",
	Short: "Print the data matrix",
	Long: `Print the data matrix, one row per line in curve order.

Null cells are printed as the file's own null sentinel unless --null
overrides the replacement value.`,
	Args: cobra.ExactArgs(1),
	RunE: runData,
}

func init() {
	dataCmd.Flags().Float64Var(&flagNull, "null", 0, "replacement value for null cells")
	rootCmd.AddCommand(dataCmd)
}

func runData(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log.Debug().Str("file", filename).Msg("parsing data matrix")

	doc, err := lasio.Open(filename).Encoding(cfg.Encoding).Document()
	if err != nil {
		return err
	}

	null := doc.Null
	if cmd.Flags().Changed("null") {
		null = flagNull
	} else if cfg.NullValue != nil {
		null = *cfg.NullValue
	}

	rows := doc.Data.Floats(null)
	log.Debug().Int("rows", len(rows)).Int("curves", doc.CurveCount()).Msg("matrix parsed")

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				fmt.Print("\t")
			}
			fmt.Printf("%g", v)
		}
		fmt.Println()
	}
	return nil
}
