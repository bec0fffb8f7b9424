package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/leak-finder/pkg/runtime/terminal/commands"
	"github.com/de-tools/leak-finder/pkg/runtime/terminal/export"
	"github.com/de-tools/leak-finder/pkg/services/audit"
	"github.com/de-tools/leak-finder/pkg/services/state"
)

// CLI represents the command-line interface
type CLI struct {
	state    *state.Service
	auditor  *audit.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	State   *state.Service
	Auditor *audit.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		state:    opts.State,
		auditor:  opts.Auditor,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leak-finder",
		Short: "Cloud cost leak auditing tool",
	}

	cmd.AddCommand(commands.NewResourcesCmd(cli.state))
	cmd.AddCommand(commands.NewAuditCmd(cli.state, cli.auditor, cli.reporter))
	cmd.AddCommand(commands.NewSnoozeCmd(cli.state))
	cmd.AddCommand(commands.NewHistoryCmd(cli.state))

	return cmd
}
