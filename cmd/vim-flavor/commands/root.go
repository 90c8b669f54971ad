// Package commands implements the CLI commands for vim-flavor.
package commands

import (
	"context"

	"github.com/ngtk/vim-flavor/internal/app"
	"github.com/ngtk/vim-flavor/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for vim-flavor.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	opts    app.Options
}

// New creates a new CLI instance with the given app.
// defaults supplies the file paths used when no flag overrides them.
func New(a *app.App, defaults app.Options) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vim-flavor",
		Short:         "A tool to manage your favorite Vim plugins",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		opts:    defaults,
	}

	rootCmd.PersistentFlags().StringVarP(&c.opts.FlavorfilePath, "flavorfile", "f", defaults.FlavorfilePath,
		"Path to the file declaring flavors")
	rootCmd.PersistentFlags().StringVarP(&c.opts.LockfilePath, "lockfile", "l", defaults.LockfilePath,
		"Path to the lockfile")

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
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
