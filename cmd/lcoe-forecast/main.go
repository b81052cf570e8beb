package main

import (
	"os"

	"github.com/iwvelando/lcoe-forecast/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
