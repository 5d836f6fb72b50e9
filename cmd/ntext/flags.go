//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --verbose, --version, --keycodes

package main

import "flag"

type cliArgs struct {
	configPath string
	verbose    bool
	version    bool
	keycodes   bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.configPath, "config", "", "Settings file (default $XDG_CONFIG_HOME/ntext/config.yaml)")
	flag.BoolVar(&args.verbose, "verbose", false, "Debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.BoolVar(&args.keycodes, "keycodes", false, "Print the code of every key pressed; q exits")

	flag.Parse()
	return args
}
