package main

import (
	"os"

	"github.com/coinbase/sodium-go/cmd/sodium-go/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
