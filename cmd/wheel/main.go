package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/spinwheel/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (default ~/.spinwheel/config.yaml)")
	dataDir := flag.String("data-dir", "", "directory holding the saved items")
	theme := flag.String("theme", "", "classic | neon | mono")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	// Hand the remaining args to the CLI runner; none means the interactive wheel.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		DataDir:    *dataDir,
		Theme:      *theme,
		Debug:      *debug,
	}))
}
