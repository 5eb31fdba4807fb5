// Package cli defines the forumapi command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the forumapi command. Without a subcommand it serves.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "forumapi",
		Short: "Forum API server",
		Long: `Forum API serves threads and comments over HTTP.

Configuration is read from APP_* environment variables.

Commands:
  serve    - Run the HTTP server (default)
  migrate  - Manage the database schema`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}
