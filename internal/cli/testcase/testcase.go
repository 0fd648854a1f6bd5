// Package testcase holds all cli commands related to test cases
//
// e.g., testdeck case ...
package testcase

import (
	"github.com/spf13/cobra"
)

// CaseCmd returns the case parent command
func CaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "case",
		Aliases: []string{"cases"},
		Short:   "Manage the test cases of a plan",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
