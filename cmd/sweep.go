package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/cfapi"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/config"
	runctx "github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/context"
	clog "github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/log"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/logging"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/reconcile"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/report"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
)

const configFileName = "logpush.yml"

func outputStyle() types.OutputStyle {
	switch {
	case wantJSON:
		return types.StyleMachineJSON
	case Verbose:
		return types.StyleHumanVerbose
	default:
		return types.StyleHuman
	}
}

// runSweep drives one full sweep: resolve config, enumerate every
// (account, zone) pair, reconcile each one, and aggregate the outcomes.
// It exits non-zero when any unit failed.
func runSweep(mode reconcile.Mode) {
	style := outputStyle()
	logger := clog.NewLogger(style)

	// --- Load and validate configuration ---

	cfg, err := config.Load(configFileName)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := config.Validate(cfg, mode == reconcile.ModeCreate); err != nil {
		cobra.CheckErr(fmt.Errorf("invalid configuration: %w", err))
	}
	logger.Info("✓ Configuration loaded and validated.")
	if mode == reconcile.ModeCreate {
		logger.Info("Destination URL: %s", cfg.EndpointURL)
		logger.Info("Datasets to configure: %s", strings.Join(cfg.Datasets, ", "))
		if cfg.AuthHeader != "" {
			logger.Info("Using Authorization header for log destination.")
		}
	}

	// --- Initialize run identity and logging ---

	runId := uuid.New()
	runStartTime := time.Now()

	logDir, err := logging.CreateLogDir(runId, runStartTime, mode.String())
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to create log directory for run %s: %w", runId.String(), err))
	}

	logFilePath := filepath.Join(logDir, "run.log")
	if err := logging.ConfigureGlobalLogger(Verbose, logFilePath); err != nil {
		cobra.CheckErr(fmt.Errorf("failed to initialize logging: %w", err))
	}

	logCtx := log.With().Str("run_id", runId.String()).Logger()
	logCtx.Info().Msgf("Logs will be stored in: %s", logDir)
	logger.Verbose("Logs for run %s will be stored in: %s", runId.String(), logDir)

	// --- Set up client and run context ---

	client, err := cfapi.NewClient(cfapi.Config{APIToken: cfg.APIToken})
	if err != nil {
		cobra.CheckErr(fmt.Errorf("failed to create API client: %w", err))
	}

	run := &runctx.RunContext{
		RunId:       runId,
		Config:      cfg,
		LogDir:      logDir,
		Command:     mode.String(),
		OutputStyle: style,
		Logger:      logger,
	}
	reconciler := reconcile.New(client, run)
	aggregator := report.NewAggregator()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Sweep ---

	logCtx.Info().Msg("Starting sweep...")
	logger.StartSpinner("Fetching accounts and zones ...")
	spinning := true

	enum := cfapi.NewEnumerator(client)
	for enum.Next(ctx) {
		if spinning {
			logger.StopSpinner()
			spinning = false
		}

		pair := enum.Pair()
		aggregator.MarkZoneVisited(pair.Zone.ID)

		for _, rec := range reconciler.SweepZone(ctx, mode, pair) {
			aggregator.Add(rec)
			if err := logging.SaveActionRecord(logDir, rec); err != nil {
				logCtx.Error().Err(err).Msg("Failed to save action record")
			}
		}
	}
	if spinning {
		logger.StopSpinner()
	}

	if err := enum.Err(); err != nil {
		if cfapi.IsUnauthorized(err) {
			cobra.CheckErr(fmt.Errorf("authentication failed, check %s: %w", config.EnvAPIToken, err))
		}
		cobra.CheckErr(fmt.Errorf("failed to enumerate zones: %w", err))
	}
	for _, accErr := range enum.AccountErrors() {
		logCtx.Error().Err(accErr.Err).Str("account", accErr.Account.Name).Msg("Failed to list zones for account")
		aggregator.AddEnumerationFailure(accErr.Account.Name, accErr.Err)
	}

	// --- Construct and write the run summary ---

	datasets := cfg.Datasets
	if mode != reconcile.ModeCreate {
		datasets = nil
	}
	summary := aggregator.Summarize(runId, runStartTime, mode.String(), datasets)

	if err := writeSummary(summary, logDir); err != nil {
		logCtx.Error().Err(err).Msg("Failed to write summary.json")
	}

	if style != types.StyleMachineJSON {
		report.RenderHuman(os.Stdout, summary)
	}
	logger.Json(summary)
	logCtx.Info().Msgf("Sweep complete: %s", summary.OverallStatus)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
