package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/cashview/internal/buildinfo"
	"github.com/cleared-dev/cashview/internal/config"
	"github.com/cleared-dev/cashview/internal/importer"
	"github.com/cleared-dev/cashview/internal/logger"
	"github.com/cleared-dev/cashview/internal/model"
)

// app is the state shared by all subcommands. The statement is loaded once
// before any subcommand runs.
type app struct {
	configPath   string
	envFile      string
	dataPath     string
	settingsPath string
	verbose      bool

	cfg  *config.Config
	txns []model.Transaction
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "cashview",
		Short:   "Reports over a personal bank statement export",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "cashview.yaml", "config file")
	flags.StringVar(&a.envFile, "env-file", ".env", "file with API keys")
	flags.StringVar(&a.dataPath, "data", "", "statement export (xlsx or csv), overrides config")
	flags.StringVar(&a.settingsPath, "settings", "", "user settings JSON, overrides config")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newDashboardCommand(a))
	rootCmd.AddCommand(newSearchCommand(a))
	rootCmd.AddCommand(newReportCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(cmd.ErrOrStderr(), level)

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.DataPath = a.dataPath
	}
	if a.settingsPath != "" {
		cfg.SettingsPath = a.settingsPath
	}
	if err := cfg.LoadKeys(a.envFile); err != nil {
		return err
	}
	a.cfg = cfg

	a.txns = importer.Load(log, cfg.DataPath)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.WithContext(ctx, log))
	return nil
}
