package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/leak-finder/pkg/services/state"
)

type ResourcesCmd struct {
	state *state.Service
}

func NewResourcesCmd(st *state.Service) *cobra.Command {
	rc := &ResourcesCmd{state: st}
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "List the tracked cloud inventory",
		RunE:  rc.run,
	}
	return cmd
}

func (rc *ResourcesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	resources, err := rc.state.Resources(ctx)
	if err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}
	if len(resources) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No resources tracked.")
		return nil
	}

	for _, r := range resources {
		fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-8s %-14s %-8s $%.2f/month\n",
			r.ID, r.Type, r.Region, r.Status, r.MonthlyCost)
	}
	return nil
}
