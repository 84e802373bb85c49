package main

import (
	"os"

	"github.com/dshills/clikit/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
