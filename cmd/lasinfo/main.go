package main

import (
	"os"

	"github.com/tsawler/lasio/cmd/lasinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
