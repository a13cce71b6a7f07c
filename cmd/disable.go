package cmd

import (
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/reconcile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(disableCmd)
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable every Logpush job on every zone",
	Long: `Disable sweeps every zone visible to the API token and sets
enabled=false on each Logpush job it finds. The jobs are kept and can be
re-enabled later; jobs that are already disabled are reported as no-ops.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSweep(reconcile.ModeDisable)
	},
}
