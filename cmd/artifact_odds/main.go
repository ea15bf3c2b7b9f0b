package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/app"
)

func main() {
	opts, err := app.ParseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(app.RunWithOptions(opts))
}
