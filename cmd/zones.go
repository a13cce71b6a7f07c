package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/cfapi"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/config"
	clog "github.com/Dgilmore-CF/cloudflare-logpush-automation/internal/log"
	"github.com/Dgilmore-CF/cloudflare-logpush-automation/types"
)

func init() {
	rootCmd.AddCommand(zonesCmd)
}

type zoneListing struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	ZoneID      string `json:"zone_id"`
	ZoneName    string `json:"zone_name"`
	Status      string `json:"status"`
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List every account and zone visible to the API token",
	Long: `Zones enumerates every account the token can see and every zone
within each account, in API order. Useful for checking what a sweep would
cover before running create, disable, or delete.`,
	Run: func(cmd *cobra.Command, args []string) {
		style := outputStyle()
		logger := clog.NewLogger(style)

		cfg, err := config.Load(configFileName)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load configuration: %w", err))
		}
		if cfg.APIToken == "" {
			cobra.CheckErr(fmt.Errorf("field 'api_token' is required (set %s)", config.EnvAPIToken))
		}

		client, err := cfapi.NewClient(cfapi.Config{APIToken: cfg.APIToken})
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to create API client: %w", err))
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logger.StartSpinner("Fetching accounts and zones ...")
		spinning := true

		var listings []zoneListing
		enum := cfapi.NewEnumerator(client)
		for enum.Next(ctx) {
			if spinning {
				logger.StopSpinner()
				spinning = false
			}
			pair := enum.Pair()
			listings = append(listings, zoneListing{
				AccountID:   pair.Account.ID,
				AccountName: pair.Account.Name,
				ZoneID:      pair.Zone.ID,
				ZoneName:    pair.Zone.Name,
				Status:      pair.Zone.Status,
			})
			logger.Info("%s\t%s\t%s", pair.Account.Name, pair.Zone.Name, pair.Zone.Status)
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
			logger.Error("account %s: failed to list zones: %v", accErr.Account.Name, accErr.Err)
		}

		logger.Info("\nFound %d zone(s).", len(listings))
		if style == types.StyleMachineJSON {
			logger.Json(listings)
		}
	},
}
