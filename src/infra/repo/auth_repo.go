package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
	"forumapi/src/infra/db"
)

var _ ports.AuthenticationRepository = (*AuthenticationRepository)(nil)

// AuthenticationRepository implements ports.AuthenticationRepository using pgx.
type AuthenticationRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewAuthenticationRepository constructs a refresh-token store backed by Postgres.
func NewAuthenticationRepository(pg *db.Postgres, log *slog.Logger) *AuthenticationRepository {
	return &AuthenticationRepository{pool: pg.Pool, log: log}
}

func (r *AuthenticationRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *AuthenticationRepository) AddToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO authentications (token) VALUES ($1)`, token)
	return err
}

func (r *AuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1 FROM authentications WHERE token = $1 LIMIT 1`, token).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewValidationError("REFRESH_TOKEN.NOT_FOUND", "refreshToken", "refresh token not found")
		}
		return err
	}
	return nil
}

func (r *AuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM authentications WHERE token = $1`, token)
	return err
}
