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

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository using pgx.
type UserRepository struct {
	pool *pgxpool.Pool
	opts Options
	log  *slog.Logger
}

// NewUserRepository constructs a user repository backed by Postgres.
func NewUserRepository(pg *db.Postgres, opts Options, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pg.Pool,
		opts: opts.withDefaults(),
		log:  log,
	}
}

func (r *UserRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *UserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	const q = `SELECT 1 FROM users WHERE username = $1`

	var one int
	err := r.pool.QueryRow(ctx, q, username).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return domain.NewConflictError("username is not available")
}

func (r *UserRepository) AddUser(ctx context.Context, user domain.RegisterUser) (*domain.RegisteredUser, error) {
	const q = `
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, fullname
	`
	id := UserIDPrefix + r.opts.IDGenerator()

	var u domain.RegisteredUser
	if err := r.pool.QueryRow(ctx, q, id, user.Username, user.Password, user.Fullname).
		Scan(&u.ID, &u.Username, &u.Fullname); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("username is not available")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	const q = `SELECT password FROM users WHERE username = $1`

	var password string
	if err := r.pool.QueryRow(ctx, q, username).Scan(&password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewValidationError("USER_LOGIN.USERNAME_NOT_FOUND", "username", "username not found")
		}
		return "", err
	}
	return password, nil
}

func (r *UserRepository) GetIDByUsername(ctx context.Context, username string) (string, error) {
	const q = `SELECT id FROM users WHERE username = $1`

	var id string
	if err := r.pool.QueryRow(ctx, q, username).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewValidationError("USER_LOGIN.USERNAME_NOT_FOUND", "username", "username not found")
		}
		return "", err
	}
	return id, nil
}
