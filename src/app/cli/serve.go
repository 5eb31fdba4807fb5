package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"forumapi/src/app/server"
	"forumapi/src/infra/config"
	"forumapi/src/infra/db"
	"forumapi/src/infra/logger"
	"forumapi/src/infra/repo"
	"forumapi/src/infra/repo/memory"
	"forumapi/src/infra/security"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"store", cfg.Store.Backend,
	)

	deps, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	deps.Hasher = security.NewBcryptPasswordHash(0)
	deps.Tokens = security.NewJWTTokenManager(cfg.Auth)

	// Run blocks until shutdown signal is received
	return server.New(cfg, log, deps).Run()
}

// openStore builds the repositories for the configured backend.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (server.Dependencies, func(), error) {
	if cfg.Store.Backend == config.StoreMemory {
		store := memory.NewStore(repo.Options{})
		return server.Dependencies{
			Threads:  store,
			Comments: store,
			Users:    store,
			Auths:    store,
			Store:    store,
		}, func() {}, nil
	}

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return server.Dependencies{}, nil, err
	}
	if cfg.Database.Migrate {
		if err := pg.MigrateUp(ctx); err != nil {
			pg.Close()
			return server.Dependencies{}, nil, fmt.Errorf("startup migration: %w", err)
		}
	}

	repoLog := logger.WithComponent(log, "repo")
	return server.Dependencies{
		Threads:  repo.NewThreadRepository(pg, repo.Options{}, repoLog),
		Comments: repo.NewCommentRepository(pg, repo.Options{}, repoLog),
		Users:    repo.NewUserRepository(pg, repo.Options{}, repoLog),
		Auths:    repo.NewAuthenticationRepository(pg, repoLog),
		Store:    pg,
	}, pg.Close, nil
}
