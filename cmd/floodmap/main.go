package main

import (
	"os"

	"github.com/isee3s/floodcontrolph/internal/cli"
)

func main() {
	setupEnvironment()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
