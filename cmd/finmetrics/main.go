package main

import (
	"os"

	"github.com/idilsaglam/finmetrics/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
