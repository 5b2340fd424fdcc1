package main

import (
	"os"

	"github.com/arthur-debert/spotlight-manager/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
