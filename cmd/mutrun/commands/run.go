package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mutrun/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Type-check, invalidate caches and run the tests of changed files",
		Long: `Runs the type checker over the source root, removes the compiled cache of
every changed file, runs the paired tests of backed-up files and removes the
cache again. The exit status is the test runner's when it fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{Options: c.options(cmd)})
		},
	}
}
