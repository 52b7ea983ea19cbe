package main

import (
	"os"

	"github.com/rcoan/airsoft-suitcase/cmd/arduino-diagram/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
