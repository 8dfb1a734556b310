package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/todosh/internal/cli"
	"github.com/idilsaglam/todosh/internal/config"
	"github.com/idilsaglam/todosh/internal/manager"
	"github.com/idilsaglam/todosh/internal/store/jsonstore"
	"github.com/idilsaglam/todosh/internal/tui"
	"github.com/idilsaglam/todosh/internal/ui"
)

func main() {
	// Root flags override ~/.todosh/config.toml.
	file := flag.String("file", "", "path to the data file")
	color := flag.String("color", "", "color output: auto, always or never")
	fullScreen := flag.Bool("tui", false, "open the full-screen list instead of the shell")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// A broken config file is not worth refusing to start over.
		ui.Fail(os.Stderr, err.Error())
	}
	if *file != "" {
		cfg.DataFile = *file
	}
	if *color != "" {
		cfg.Color = *color
	}
	ui.SetColorMode(cfg.Color)

	mgr, recovered, err := manager.New(jsonstore.New(cfg.DataFile))
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
	if recovered {
		ui.Fail(os.Stderr, "data file is corrupt; starting with an empty list")
	}

	if *fullScreen {
		if err := tui.Run(mgr); err != nil {
			ui.Fail(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}

	if err := cli.New(mgr, os.Stdin, os.Stdout, os.Stderr).Run(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}
