package main

import (
	"os"

	"github.com/apps4uco/sailfish/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
