package repo

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Identifier prefixes of the public id format.
const (
	ThreadIDPrefix  = "thread-"
	CommentIDPrefix = "comment-"
	UserIDPrefix    = "user-"
)

// DateLayout is the ISO-8601 layout of stored timestamps (always UTC, millisecond precision).
const DateLayout = "2006-01-02T15:04:05.000Z"

// IDGenerator produces the unique suffix of a public identifier.
type IDGenerator func() string

// Clock supplies the current instant.
type Clock func() time.Time

// Options carries the collaborators shared by every repository.
type Options struct {
	IDGenerator IDGenerator
	Clock       Clock
}

// DefaultIDGenerator returns 16 hex characters taken from a random UUID.
func DefaultIDGenerator() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// FormatDate serializes t in the stored ISO-8601 form.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func (o Options) withDefaults() Options {
	if o.IDGenerator == nil {
		o.IDGenerator = DefaultIDGenerator
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

func (o Options) now() string {
	return FormatDate(o.Clock())
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
