package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Verbose  bool
	wantJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "logpush",
	Short: "Manage Cloudflare Logpush jobs across every zone a token can reach",
	Long: `logpush sweeps every account and zone visible to a Cloudflare API
token and creates, disables, or deletes Logpush jobs on each one.

Jobs are named deterministically (logpush_<dataset>_<zone>), so rerunning
create is idempotent: jobs that already exist are skipped.

Environment:
  CLOUDFLARE_API_TOKEN   API token (required)
  LOGPUSH_ENDPOINT_URL   Destination URL (required for create)
  LOGPUSH_AUTH_HEADER    Optional Authorization header for the destination
  LOGPUSH_DATASET        Comma-separated datasets (default: http_requests)

An optional logpush.yml in the working directory provides the same settings;
environment variables win. A .env file is loaded if present.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&wantJSON, "json", false, "Emit the run summary as JSON on stdout")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
