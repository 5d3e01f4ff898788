package main

import (
	"os"

	"github.com/mi66mc/pluto/cmd/pluto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
