package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/woodstock/internal/config"
	"github.com/handiism/woodstock/internal/store"
	"github.com/handiism/woodstock/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to settings file (.yaml, .yml or .json)")
		dataDirFlag = flag.String("data-dir", "", "Directory holding stored entries (overrides settings)")
	)
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	dir := *dataDirFlag
	if dir == "" {
		var err error
		dir, err = settings.DataDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(tui.StoreLoader(store.New(dir))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
