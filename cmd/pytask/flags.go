// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -verbose and -version; subcommands follow the flags

package main

import "flag"

type cliArgs struct {
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
