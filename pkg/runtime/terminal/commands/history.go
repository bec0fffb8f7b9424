package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/leak-finder/pkg/services/state"
)

type HistoryCmd struct {
	limit int
	state *state.Service
}

func NewHistoryCmd(st *state.Service) *cobra.Command {
	hc := &HistoryCmd{state: st}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past audit runs, newest first",
		RunE:  hc.run,
	}

	cmd.Flags().IntVar(&hc.limit, "limit", 12, "Maximum number of records to show")

	return cmd
}

func (hc *HistoryCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	records, err := hc.state.AuditHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load audit history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No audits recorded yet.")
		return nil
	}
	if hc.limit > 0 && len(records) > hc.limit {
		records = records[:hc.limit]
	}

	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  savings $%.2f  carbon %.1fkg  leaks %d\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.SavingsFound, r.CarbonSaved, r.LeakCount)
	}
	return nil
}
