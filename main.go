package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/cmd"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/logging"
)

func main() {
	// Cobra has not parsed flags yet, so peek at the args to configure the
	// global logger before any command runs. Commands that sweep switch the
	// logger to a per-run log file themselves.
	isVerbose := false
	for _, arg := range os.Args {
		if arg == "--verbose" || arg == "-v" {
			isVerbose = true
		}
	}

	if err := logging.ConfigureGlobalLogger(isVerbose, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	// Credentials may live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
