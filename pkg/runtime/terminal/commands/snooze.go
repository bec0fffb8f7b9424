package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/leak-finder/pkg/services/state"
)

type SnoozeCmd struct {
	hours int
	state *state.Service
}

func NewSnoozeCmd(st *state.Service) *cobra.Command {
	sc := &SnoozeCmd{state: st}
	cmd := &cobra.Command{
		Use:   "snooze <resource-id>",
		Short: "Suppress findings for a resource for a period of time",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().IntVar(&sc.hours, "hours", 24, "Hours to suppress findings for")

	return cmd
}

func (sc *SnoozeCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	resourceID := args[0]

	if err := sc.state.SnoozeResource(ctx, resourceID, sc.hours); err != nil {
		return fmt.Errorf("failed to snooze %s: %w", resourceID, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Findings for %s suppressed for %dh.\n", resourceID, sc.hours)
	return nil
}
