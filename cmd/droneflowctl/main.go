package main

import (
	"os"

	"droneflow/cmd/droneflowctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
