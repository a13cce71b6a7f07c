package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/reconcile"
	"github.com/spf13/cobra"
)

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the interactive confirmation prompt")
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete every Logpush job on every zone",
	Long: `Delete sweeps every zone visible to the API token and permanently
deletes each Logpush job it finds. This cannot be undone.

The command prompts for confirmation before any destructive call is made;
type DELETE to proceed, or pass --yes for non-interactive use.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !confirmDeletion(os.Stdin, os.Stdout, deleteYes) {
			fmt.Println("Delete operation cancelled.")
			return
		}
		runSweep(reconcile.ModeDelete)
	},
}

// confirmDeletion gates the destructive sweep. No delete call is issued
// unless the user types DELETE (or assumeYes is set).
func confirmDeletion(in io.Reader, out io.Writer, assumeYes bool) bool {
	if assumeYes {
		return true
	}

	fmt.Fprintln(out, "WARNING: This will PERMANENTLY DELETE all Logpush jobs on every zone!")
	fmt.Fprint(out, "Type 'DELETE' to confirm: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimSpace(line) == "DELETE"
}
