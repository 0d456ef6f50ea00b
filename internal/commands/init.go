package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/cashview/internal/config"
	"github.com/cleared-dev/cashview/internal/settings"
)

func newInitCommand() *cobra.Command {
	var currencies []string
	var stocks []string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default cashview.yaml and user_settings.json",
		Args:  cobra.MaximumNArgs(1),
		// The statement is not needed here.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, settings.Settings{Currencies: currencies, Stocks: stocks})
		},
	}

	cmd.Flags().StringSliceVar(&currencies, "currencies", []string{"USD", "EUR"}, "currencies shown on the dashboard")
	cmd.Flags().StringSliceVar(&stocks, "stocks", []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}, "stocks shown on the dashboard")

	return cmd
}

// runInit writes the files that are missing and leaves existing ones alone.
func runInit(cmd *cobra.Command, dir string, watchlist settings.Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default()
	cfgPath := filepath.Join(dir, "cashview.yaml")
	if err := writeIfMissing(cmd, cfgPath, func() error { return config.Save(cfgPath, cfg) }); err != nil {
		return err
	}

	settingsPath := filepath.Join(dir, cfg.SettingsPath)
	return writeIfMissing(cmd, settingsPath, func() error { return settings.Save(settingsPath, watchlist) })
}

func writeIfMissing(cmd *cobra.Command, path string, write func() error) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := write(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
