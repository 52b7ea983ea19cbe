package main

import (
	"os"

	"github.com/rcoan/airsoft-suitcase/cmd/generate-diagrams/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
