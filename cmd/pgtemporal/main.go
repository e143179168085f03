package main

import (
	"os"

	"github.com/theory/pgtemporal/cmd/pgtemporal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
