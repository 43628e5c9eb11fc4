package main

import (
	"os"

	"github.com/robalobadob/nagaram/cmd/nagaram/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
