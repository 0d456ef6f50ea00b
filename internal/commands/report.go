package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/cashview/internal/logger"
	"github.com/cleared-dev/cashview/internal/report"
	"github.com/cleared-dev/cashview/internal/search"
)

func newReportCommand(a *app) *cobra.Command {
	var date string
	var out string
	var noSave bool

	cmd := &cobra.Command{
		Use:   "report <category>",
		Short: "Spending in a category over the 90 days up to a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = filepath.Join(a.cfg.ReportDir, report.DefaultFileName)
			}
			return runReport(cmd, a, args[0], date, out, !noSave)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "last day of the window as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&out, "out", "", "report file (default <report_dir>/"+report.DefaultFileName+")")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "print the report without writing the file")

	return cmd
}

func runReport(cmd *cobra.Command, a *app, category, date, out string, save bool) error {
	log := logger.FromContext(cmd.Context())

	rep, err := report.SpendingByCategory(log, a.txns, category, date)
	if err != nil {
		return err
	}

	if save {
		if err := report.Save(out, rep.Transactions); err != nil {
			return err
		}
		log.Info().Str("path", out).Msg("report saved")
	}

	rendered, err := search.Render(rep.Transactions)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, rendered)
	fmt.Fprintf(w, "%s, %s to %s: %d transactions, total %s\n",
		rep.Category, rep.From.Format("2006-01-02"), rep.To.Format("2006-01-02"),
		len(rep.Transactions), rep.Total.StringFixed(2))
	return nil
}
