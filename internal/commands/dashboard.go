package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/cashview/internal/dashboard"
	"github.com/cleared-dev/cashview/internal/logger"
	"github.com/cleared-dev/cashview/internal/rates"
)

func newDashboardCommand(a *app) *cobra.Command {
	var timestamp string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show greeting, card stats, top transactions and quotes as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if timestamp == "" {
				timestamp = time.Now().Format(dashboard.TimestampFormat)
			}
			return runDashboard(cmd, a, timestamp)
		},
	}

	cmd.Flags().StringVar(&timestamp, "time", "", `current time as "YYYY-MM-DD HH:MM:SS" (default now)`)

	return cmd
}

func runDashboard(cmd *cobra.Command, a *app, timestamp string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	client := &http.Client{Timeout: a.cfg.Timeout()}
	composer := dashboard.NewComposer(
		a.cfg.SettingsPath,
		rates.NewCurrencyClient(client, a.cfg.CurrencyAPI.BaseURL, a.cfg.CurrencyAPI.APIKey, a.cfg.BaseCurrency, log),
		rates.NewStockClient(client, a.cfg.StockAPI.BaseURL, a.cfg.StockAPI.APIKey, log),
		log,
	)

	d, err := composer.Compose(ctx, timestamp, a.txns)
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	out, err := d.JSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
