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

var _ ports.ThreadRepository = (*ThreadRepository)(nil)

// ThreadRepository implements ports.ThreadRepository using pgx.
type ThreadRepository struct {
	pool *pgxpool.Pool
	opts Options
	log  *slog.Logger
}

// NewThreadRepository constructs a thread repository backed by Postgres.
func NewThreadRepository(pg *db.Postgres, opts Options, log *slog.Logger) *ThreadRepository {
	return &ThreadRepository{
		pool: pg.Pool,
		opts: opts.withDefaults(),
		log:  log,
	}
}

func (r *ThreadRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *ThreadRepository) AddThread(ctx context.Context, thread domain.NewThread) (*domain.AddedThread, error) {
	const q = `
		INSERT INTO threads (id, title, body, date, owner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, owner
	`
	id := ThreadIDPrefix + r.opts.IDGenerator()

	var addedID, title, owner string
	if err := r.pool.QueryRow(ctx, q, id, thread.Title, thread.Body, r.opts.now(), thread.Owner).
		Scan(&addedID, &title, &owner); err != nil {
		return nil, err
	}
	return domain.NewAddedThread(domain.Payload{"id": addedID, "title": title, "owner": owner})
}

func (r *ThreadRepository) CheckAvailabilityThread(ctx context.Context, threadID string) error {
	const q = `SELECT 1 FROM threads WHERE id = $1`

	var one int
	if err := r.pool.QueryRow(ctx, q, threadID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError("thread")
		}
		return err
	}
	return nil
}

func (r *ThreadRepository) GetDetailThread(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	const q = `
		SELECT t.id, t.title, t.body, t.date, u.username
		FROM threads t
		LEFT JOIN users u ON u.id = t.owner
		WHERE t.id = $1
	`
	var (
		d        domain.ThreadDetail
		username *string
	)
	if err := r.pool.QueryRow(ctx, q, threadID).Scan(&d.ID, &d.Title, &d.Body, &d.Date, &username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("thread")
		}
		return nil, err
	}
	if username != nil {
		d.Username = *username
	}
	return &d, nil
}
