package cmd

import (
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/reconcile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create Logpush jobs for every zone and configured dataset",
	Long: `Create sweeps every zone visible to the API token and creates one
Logpush job per configured dataset, pointing at LOGPUSH_ENDPOINT_URL.

Jobs are named logpush_<dataset>_<zone>. A zone that already has a job with
the derived name is skipped, so rerunning create is safe and idempotent.

Examples:
  logpush create
  LOGPUSH_DATASET=http_requests,firewall_events logpush create`,
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(reconcile.ModeCreate)
	},
}
