package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/leak-finder/pkg/runtime/terminal/export"
	"github.com/de-tools/leak-finder/pkg/services/audit"
	"github.com/de-tools/leak-finder/pkg/services/state"
)

type AuditCmd struct {
	resourceIDs []string
	timeout     time.Duration
	state       *state.Service
	auditor     *audit.Service
	reporter    *export.Reporter
}

func NewAuditCmd(st *state.Service, auditor *audit.Service, reporter *export.Reporter) *cobra.Command {
	ac := &AuditCmd{state: st, auditor: auditor, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run a cost leakage analysis over the inventory",
		RunE:  ac.run,
	}

	cmd.Flags().StringSliceVar(&ac.resourceIDs, "resource", nil, "Limit the audit to specific resource IDs (repeatable)")
	cmd.Flags().DurationVar(&ac.timeout, "timeout", 5*time.Minute, "Overall analysis timeout")

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), ac.timeout)
	defer cancel()

	resources, err := ac.state.Resources(ctx)
	if err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}
	if len(ac.resourceIDs) > 0 {
		wanted := make(map[string]bool, len(ac.resourceIDs))
		for _, id := range ac.resourceIDs {
			wanted[id] = true
		}
		subset := resources[:0]
		for _, r := range resources {
			if wanted[r.ID] {
				subset = append(subset, r)
			}
		}
		resources = subset
	}
	if len(resources) == 0 {
		return fmt.Errorf("no matching resources to audit")
	}

	result, err := ac.auditor.Run(ctx, resources)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	err = ac.state.RecordAudit(ctx, result.TotalPotentialSavings, result.CarbonSavingsKg, len(result.Leaks))
	if err != nil {
		return fmt.Errorf("failed to record audit: %w", err)
	}

	return ac.reporter.Handle(result)
}
