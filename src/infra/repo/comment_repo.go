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

var _ ports.CommentRepository = (*CommentRepository)(nil)

// CommentRepository implements ports.CommentRepository using pgx.
type CommentRepository struct {
	pool *pgxpool.Pool
	opts Options
	log  *slog.Logger
}

// NewCommentRepository constructs a comment repository backed by Postgres.
func NewCommentRepository(pg *db.Postgres, opts Options, log *slog.Logger) *CommentRepository {
	return &CommentRepository{
		pool: pg.Pool,
		opts: opts.withDefaults(),
		log:  log,
	}
}

func (r *CommentRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *CommentRepository) AddComment(ctx context.Context, comment domain.NewComment) (*domain.AddedComment, error) {
	const q = `
		INSERT INTO comments (id, user_id, thread_id, date, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, content
	`
	id := CommentIDPrefix + r.opts.IDGenerator()

	var addedID, owner, content string
	if err := r.pool.QueryRow(ctx, q, id, comment.UserID, comment.ThreadID, r.opts.now(), comment.Content).
		Scan(&addedID, &owner, &content); err != nil {
		return nil, err
	}
	return domain.NewAddedComment(domain.Payload{"id": addedID, "owner": owner, "content": content})
}

func (r *CommentRepository) CheckAvailabilityComment(ctx context.Context, commentID string) error {
	const q = `SELECT 1 FROM comments WHERE id = $1`

	var one int
	if err := r.pool.QueryRow(ctx, q, commentID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError("comment")
		}
		return err
	}
	return nil
}

func (r *CommentRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	const q = `SELECT 1 FROM comments WHERE id = $1 AND user_id = $2`

	var one int
	if err := r.pool.QueryRow(ctx, q, commentID, userID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewForbiddenError("cannot delete a comment owned by another user")
		}
		return err
	}
	return nil
}

// DeleteComment flips the soft-delete flag in a single statement.
// Re-deleting is a no-op and a missing row is not an error here.
func (r *CommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	const q = `UPDATE comments SET is_delete = TRUE WHERE id = $1`

	_, err := r.pool.Exec(ctx, q, commentID)
	return err
}

func (r *CommentRepository) GetCommentsThread(ctx context.Context, threadID string) ([]domain.CommentView, error) {
	const q = `
		SELECT c.id, u.username, c.date, c.content, c.is_delete
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.thread_id = $1
		ORDER BY c.date ASC, c.id ASC
	`
	rows, err := r.pool.Query(ctx, q, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.CommentRecord{}
	for rows.Next() {
		var (
			rec       domain.CommentRecord
			username  *string
			isDeleted bool
		)
		if err := rows.Scan(&rec.ID, &username, &rec.Date, &rec.Content, &isDeleted); err != nil {
			return nil, err
		}
		if username != nil {
			rec.Username = *username
		}
		rec.State = domain.CommentStateOf(isDeleted)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	detail, err := domain.NewDetailComment(domain.Payload{"comments": records})
	if err != nil {
		return nil, err
	}
	return detail.Comments, nil
}
