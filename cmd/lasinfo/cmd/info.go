package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/lasio"
	"github.com/tsawler/lasio/model"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print version, wrap mode, well metadata, and the curve table",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

// fileInfo is the JSON shape of the info subcommand.
type fileInfo struct {
	Version float64     `json:"version"`
	Wrap    bool        `json:"wrap"`
	Null    float64     `json:"null"`
	Rows    int         `json:"rows"`
	Well    []fieldInfo `json:"well"`
	Curves  []fieldInfo `json:"curves"`
}

type fieldInfo struct {
	Mnemonic    string `json:"mnemonic"`
	Unit        string `json:"unit,omitempty"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	log.Debug().Str("file", filename).Msg("parsing document")

	doc, err := lasio.Open(filename).Encoding(cfg.Encoding).Document()
	if err != nil {
		return err
	}

	version := 0.0
	if f, ok := doc.Version.First("VERS"); ok {
		fmt.Sscanf(f.Value, "%g", &version)
	}

	if flagJSON {
		info := fileInfo{
			Version: version,
			Wrap:    doc.Wrap,
			Null:    doc.Null,
			Rows:    doc.Data.RowCount(),
			Well:    fieldInfos(doc.Well),
			Curves:  fieldInfos(doc.Curve),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("version: %g\n", version)
	fmt.Printf("wrap:    %v\n", doc.Wrap)
	fmt.Printf("null:    %g\n", doc.Null)
	fmt.Printf("rows:    %d\n", doc.Data.RowCount())

	fmt.Println("\nwell:")
	printSection(doc.Well)
	fmt.Println("\ncurves:")
	printSection(doc.Curve)
	return nil
}

func fieldInfos(s *model.Section) []fieldInfo {
	out := make([]fieldInfo, 0, s.Len())
	for _, f := range s.Fields {
		out = append(out, fieldInfo{
			Mnemonic:    f.Mnemonic,
			Unit:        f.Unit,
			Value:       f.Value,
			Description: f.Description,
		})
	}
	return out
}

func printSection(s *model.Section) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, f := range s.Fields {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Mnemonic, f.Unit, f.Value, f.Description)
	}
	w.Flush()
}
