package main

import (
	"os"

	"github.com/falleng0d/tscx/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
