package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mutrun/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "List the changed files, cache artifacts and tests a run would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Plan(cmd.Context(), app.PlanOptions{Options: c.options(cmd)})
		},
	}
}
