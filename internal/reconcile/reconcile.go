// Package reconcile decides, per zone, whether Logpush jobs must be
// created, disabled, or deleted, and records the outcome of every attempted
// operation. A failure on one zone or job never aborts the sweep.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/cfapi"
	runctx "github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/context"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/models"
	"github.com/rs/zerolog/log"
)

// Mode selects the operation applied to every zone. Exactly one mode is
// chosen per run.
type Mode int

const (
	ModeCreate Mode = iota
	ModeDisable
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeDisable:
		return "disable"
	case ModeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Reconciler sweeps zones one at a time, invoking the API client and
// producing an ActionRecord per attempted unit.
type Reconciler struct {
	client *cfapi.Client
	run    *runctx.RunContext
}

func New(client *cfapi.Client, run *runctx.RunContext) *Reconciler {
	return &Reconciler{client: client, run: run}
}

// SweepZone processes one (account, zone) pair according to mode.
func (r *Reconciler) SweepZone(ctx context.Context, mode Mode, pair cfapi.ZonePair) []models.ActionRecord {
	r.run.Logger.Info("Processing zone: %s (ID: %s)", pair.Zone.Name, pair.Zone.ID)
	log.Debug().
		Str("account", pair.Account.Name).
		Str("zone", pair.Zone.Name).
		Str("mode", mode.String()).
		Msg("Sweeping zone")

	switch mode {
	case ModeCreate:
		return r.createZone(ctx, pair)
	case ModeDisable:
		return r.disableZone(ctx, pair)
	case ModeDelete:
		return r.deleteZone(ctx, pair)
	default:
		return nil
	}
}

// createZone creates one job per configured dataset, skipping datasets whose
// derived job name already exists on the zone.
func (r *Reconciler) createZone(ctx context.Context, pair cfapi.ZonePair) []models.ActionRecord {
	jobs, err := r.client.ListLogpushJobs(ctx, pair.Zone.ID)
	if err != nil {
		r.run.Logger.Error("failed to list jobs for %s: %v", pair.Zone.Name, err)
		records := make([]models.ActionRecord, 0, len(r.run.Config.Datasets))
		for _, dataset := range r.run.Config.Datasets {
			rec := r.startRecord(pair, dataset)
			rec.JobName = JobName(dataset, pair.Zone.Name)
			r.fail(&rec, fmt.Errorf("list jobs: %w", err))
			records = append(records, rec)
		}
		return records
	}

	existing := make(map[string]cfapi.LogpushJob, len(jobs))
	for _, job := range jobs {
		existing[job.Name] = job
	}

	destination := cfapi.DestinationConf(r.run.Config.EndpointURL, r.run.Config.AuthHeader)

	var records []models.ActionRecord
	for _, dataset := range r.run.Config.Datasets {
		rec := r.startRecord(pair, dataset)
		rec.JobName = JobName(dataset, pair.Zone.Name)

		if dup, ok := existing[rec.JobName]; ok {
			rec.JobID = dup.ID
			r.finish(&rec, models.OutcomeSkippedDuplicate)
			r.run.Logger.Info("  [SKIPPED] %s job for %s already exists", dataset, pair.Zone.Name)
			records = append(records, rec)
			continue
		}

		created, err := r.client.CreateLogpushJob(ctx, pair.Zone.ID, cfapi.NewLogpushJob{
			Name:            rec.JobName,
			DestinationConf: destination,
			Dataset:         dataset,
			Enabled:         true,
			OutputOptions:   &cfapi.OutputOptions{TimestampFormat: "rfc3339"},
		})
		if err != nil {
			r.fail(&rec, err)
			r.run.Logger.Error("failed to create %s job for %s: %v", dataset, pair.Zone.Name, err)
		} else {
			rec.JobID = created.ID
			r.finish(&rec, models.OutcomeCreated)
			r.run.Logger.Info("  [SUCCESS] Created %s job for %s (job ID: %d)", dataset, pair.Zone.Name, created.ID)
		}
		records = append(records, rec)
	}
	return records
}

// disableZone sets enabled=false on every job of the zone. Jobs already
// disabled are reported as no-ops.
func (r *Reconciler) disableZone(ctx context.Context, pair cfapi.ZonePair) []models.ActionRecord {
	jobs, err := r.listZoneJobs(ctx, pair)
	if err != nil {
		rec := r.startRecord(pair, "")
		r.fail(&rec, fmt.Errorf("list jobs: %w", err))
		return []models.ActionRecord{rec}
	}
	var records []models.ActionRecord
	for _, job := range jobs {
		rec := r.startRecord(pair, job.Dataset)
		rec.JobName = job.Name
		rec.JobID = job.ID

		if !job.Enabled {
			r.finish(&rec, models.OutcomeAlreadyDisabled)
			r.run.Logger.Info("  [SKIPPED] Job '%s' (ID: %d) is already disabled", job.Name, job.ID)
			records = append(records, rec)
			continue
		}

		if err := r.client.DisableLogpushJob(ctx, pair.Zone.ID, job.ID); err != nil {
			r.fail(&rec, err)
			r.run.Logger.Error("failed to disable job %d for %s: %v", job.ID, pair.Zone.Name, err)
		} else {
			r.finish(&rec, models.OutcomeDisabled)
			r.run.Logger.Info("  [SUCCESS] Disabled job '%s' (ID: %d) for zone %s", job.Name, job.ID, pair.Zone.Name)
		}
		records = append(records, rec)
	}
	return records
}

// deleteZone permanently deletes every job of the zone. Confirmation has
// already happened at the command layer; no destructive call is made before
// it.
func (r *Reconciler) deleteZone(ctx context.Context, pair cfapi.ZonePair) []models.ActionRecord {
	jobs, err := r.listZoneJobs(ctx, pair)
	if err != nil {
		rec := r.startRecord(pair, "")
		r.fail(&rec, fmt.Errorf("list jobs: %w", err))
		return []models.ActionRecord{rec}
	}

	var records []models.ActionRecord
	for _, job := range jobs {
		rec := r.startRecord(pair, job.Dataset)
		rec.JobName = job.Name
		rec.JobID = job.ID

		if err := r.client.DeleteLogpushJob(ctx, pair.Zone.ID, job.ID); err != nil {
			r.fail(&rec, err)
			r.run.Logger.Error("failed to delete job %d for %s: %v", job.ID, pair.Zone.Name, err)
		} else {
			r.finish(&rec, models.OutcomeDeleted)
			r.run.Logger.Info("  [SUCCESS] Deleted job '%s' (ID: %d) for zone %s", job.Name, job.ID, pair.Zone.Name)
		}
		records = append(records, rec)
	}
	return records
}

func (r *Reconciler) listZoneJobs(ctx context.Context, pair cfapi.ZonePair) ([]cfapi.LogpushJob, error) {
	jobs, err := r.client.ListLogpushJobs(ctx, pair.Zone.ID)
	if err != nil {
		r.run.Logger.Error("failed to list jobs for %s: %v", pair.Zone.Name, err)
		return nil, err
	}
	if len(jobs) == 0 {
		r.run.Logger.Info("  [INFO] No logpush jobs found for %s", pair.Zone.Name)
	} else {
		r.run.Logger.Info("  Found %d logpush job(s)", len(jobs))
	}
	return jobs, nil
}

// startRecord seeds a record for one unit of work with identity and timing.
func (r *Reconciler) startRecord(pair cfapi.ZonePair, dataset string) models.ActionRecord {
	return models.ActionRecord{
		RunId:       r.run.RunId,
		Command:     r.run.Command,
		AccountID:   pair.Account.ID,
		AccountName: pair.Account.Name,
		ZoneID:      pair.Zone.ID,
		ZoneName:    pair.Zone.Name,
		Dataset:     dataset,
		StartTime:   time.Now().Format(time.RFC3339),
	}
}

func (r *Reconciler) finish(rec *models.ActionRecord, outcome models.Outcome) {
	rec.Outcome = outcome
	stamp(rec)
}

func (r *Reconciler) fail(rec *models.ActionRecord, err error) {
	rec.Outcome = models.OutcomeFailed
	rec.Reason = err.Error()
	stamp(rec)
}

func stamp(rec *models.ActionRecord) {
	now := time.Now()
	rec.FinishTime = now.Format(time.RFC3339)
	if start, err := time.Parse(time.RFC3339, rec.StartTime); err == nil {
		rec.DurationMs = now.Sub(start).Milliseconds()
	}
}
