// Package plan holds all cli commands related to test plans
//
// e.g., testdeck plan ...
package plan

import (
	"github.com/spf13/cobra"
)

// PlanCmd returns the plan parent command
func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"plans"},
		Short:   "Manage test plans",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CountCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(TagCmd())

	return cmd
}
