// Package commands implements the CLI commands for mutrun.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mutrun/internal/app"
	"go.trai.ch/mutrun/internal/build"
)

// CLI represents the command line interface for mutrun.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Plan(ctx context.Context, opts app.PlanOptions) error
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mutrun",
		Short:         "Type-check, invalidate caches and run the tests of changed files",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Layout file (default mutrun.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.jsonLogs {
			c.app.SetJSONLogs(true)
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) options(cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath: c.configPath,
		Out:        cmd.OutOrStdout(),
	}
}
