package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"forumapi/src/infra/config"
	"forumapi/src/infra/db"
	"forumapi/src/infra/logger"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply or roll back the embedded SQL migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back the most recent migration
  status  - Show migration status`,
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, pg *db.Postgres) error {
					return pg.MigrateUp(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, pg *db.Postgres) error {
					return pg.MigrateDown(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, pg *db.Postgres) error {
					statuses, err := pg.MigrationStatuses(ctx)
					if err != nil {
						return err
					}
					return printStatuses(cmd.OutOrStdout(), statuses)
				})
			},
		},
	)
	return migrateCmd
}

func withDatabase(ctx context.Context, fn func(context.Context, *db.Postgres) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	return fn(ctx, pg)
}

func printStatuses(w io.Writer, statuses []db.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tMIGRATION")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, state, s.Path)
	}
	return tw.Flush()
}
