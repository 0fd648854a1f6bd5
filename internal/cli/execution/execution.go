// Package execution holds all cli commands related to test plan executions
//
// e.g., testdeck exec ...
package execution

import (
	"github.com/spf13/cobra"
)

// ExecCmd returns the exec parent command
func ExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exec",
		Aliases: []string{"execution", "run"},
		Short:   "Start, finish and inspect test plan runs",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(StartCmd())
	cmd.AddCommand(FinishCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
