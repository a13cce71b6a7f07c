// Package report accumulates per-unit sweep outcomes into a run summary.
// Pure accumulation; the only side effect is the final rendering.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/models"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Aggregator collects the stream of ActionRecords produced by a sweep.
type Aggregator struct {
	records []models.ActionRecord
	zones   map[string]struct{}
}

func NewAggregator() *Aggregator {
	return &Aggregator{zones: make(map[string]struct{})}
}

// Add folds one record into the aggregate.
func (a *Aggregator) Add(rec models.ActionRecord) {
	a.records = append(a.records, rec)
	if rec.ZoneID != "" {
		a.zones[rec.ZoneID] = struct{}{}
	}
}

// MarkZoneVisited ensures a zone counts as visited even when it produced no
// records (e.g. a zone with no jobs to disable).
func (a *Aggregator) MarkZoneVisited(zoneID string) {
	a.zones[zoneID] = struct{}{}
}

// AddEnumerationFailure records an account whose zones could not be listed.
// It surfaces in the summary as a failed unit with no zone attached.
func (a *Aggregator) AddEnumerationFailure(accountName string, err error) {
	a.records = append(a.records, models.ActionRecord{
		ZoneName: "",
		Outcome:  models.OutcomeFailed,
		Reason:   fmt.Sprintf("account %s: list zones: %v", accountName, err),
	})
}

// Records returns everything added so far, in arrival order.
func (a *Aggregator) Records() []models.ActionRecord { return a.records }

// Summarize builds the RunSummary for the collected records.
func (a *Aggregator) Summarize(runId uuid.UUID, startTime time.Time, command string, datasets []string) models.RunSummary {
	host, _ := os.Hostname()

	summary := models.RunSummary{
		RunId:        runId,
		RunStartTime: startTime.Format(time.RFC3339),
		Command:      command,
		Datasets:     datasets,
		Initiator: types.Initiator{
			Type:   "user",
			Id:     os.Getenv("USER"),
			Tenant: host,
		},
		ZonesVisited: len(a.zones),
	}

	for _, rec := range a.records {
		switch rec.Outcome {
		case models.OutcomeCreated:
			summary.Created++
		case models.OutcomeSkippedDuplicate:
			summary.SkippedDuplicate++
		case models.OutcomeDisabled:
			summary.Disabled++
		case models.OutcomeAlreadyDisabled:
			summary.AlreadyDisabled++
		case models.OutcomeDeleted:
			summary.Deleted++
		case models.OutcomeFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, models.FailureDetail{
				Zone:    rec.ZoneName,
				Dataset: rec.Dataset,
				Reason:  rec.Reason,
			})
		}
	}

	switch {
	case summary.Failed > 0:
		summary.OverallStatus = "Failed"
	case summary.ZonesVisited == 0:
		summary.OverallStatus = "NoZones"
	default:
		summary.OverallStatus = "Success"
	}
	summary.TotalDurationMs = time.Since(startTime).Milliseconds()

	return summary
}

// RenderHuman writes the final human-readable summary block.
func RenderHuman(w io.Writer, summary models.RunSummary) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Summary ---")
	fmt.Fprintf(w, "Zones visited: %d\n", summary.ZonesVisited)

	switch summary.Command {
	case "create":
		fmt.Fprintf(w, "Created: %s  Skipped (already exist): %s\n",
			green(summary.Created), yellow(summary.SkippedDuplicate))
	case "disable":
		fmt.Fprintf(w, "Disabled: %s  Already disabled: %s\n",
			green(summary.Disabled), yellow(summary.AlreadyDisabled))
	case "delete":
		fmt.Fprintf(w, "Deleted: %s\n", green(summary.Deleted))
	}

	if summary.Failed > 0 {
		fmt.Fprintf(w, "Failed: %s\n", red(summary.Failed))
		fmt.Fprintln(w, "Failures:")
		for _, f := range summary.Failures {
			zone := f.Zone
			if zone == "" {
				zone = "(enumeration)"
			}
			if f.Dataset != "" {
				fmt.Fprintf(w, "  %s [%s]: %s\n", zone, f.Dataset, f.Reason)
			} else {
				fmt.Fprintf(w, "  %s: %s\n", zone, f.Reason)
			}
		}
	} else {
		fmt.Fprintf(w, "Failed: %d\n", summary.Failed)
	}

	fmt.Fprintf(w, "Overall: %s (%dms)\n", summary.OverallStatus, summary.TotalDurationMs)
}
