package main

import (
	"os"

	"seedphrase/cmd/seedphrase/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
