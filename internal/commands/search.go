package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/cashview/internal/logger"
	"github.com/cleared-dev/cashview/internal/search"
)

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find transactions whose description matches a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), search.ByKeyword(log, a.txns, args[0]))
			return nil
		},
	}
}
