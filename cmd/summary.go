package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/models"
)

// writeSummary writes the run summary to summary.json in the log directory.
func writeSummary(summary models.RunSummary, logDir string) error {
	formatted, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	summaryPath := filepath.Join(logDir, "summary.json")
	f, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %w", summaryPath, err)
	}
	defer f.Close()

	if _, err := f.Write(formatted); err != nil {
		return fmt.Errorf("failed to write summary file %s: %w", summaryPath, err)
	}

	return nil
}
