package main

import (
	"os"

	"github.com/sonos-tools/sonosctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
