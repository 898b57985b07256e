package main

import (
	"os"

	"github.com/pfrederiksen/dci-showbot/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
