package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/lasio"
)

var headersCmd = &cobra.Command{
	Use:   "headers <file>",
	Short: "Print the curve mnemonics in file order",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeaders,
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

func runHeaders(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log.Debug().Str("file", filename).Msg("reading curve headers")

	names, err := lasio.Open(filename).Encoding(cfg.Encoding).Headers()
	if err != nil {
		return err
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(names)
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
