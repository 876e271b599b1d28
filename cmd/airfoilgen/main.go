package main

import (
	"os"

	"airfoilgen/cmd/airfoilgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
