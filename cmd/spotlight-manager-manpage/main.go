package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/spotlight-manager/internal/cli"
	"github.com/arthur-debert/spotlight-manager/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SPOTLIGHT-MANAGER",
		Section: "1",
		Source:  "spotlight-manager " + version.Version,
		Manual:  "spotlight-manager manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
