//go:build integration

package repo

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"forumapi/src/core/domain"
	"forumapi/src/infra/config"
	"forumapi/src/infra/db"
	"forumapi/src/infra/logger"
)

var pg *db.Postgres

func TestMain(m *testing.M) {
	ctx := context.Background()
	container := mustSetup(ctx)

	code := m.Run()

	pg.Close()
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	os.Exit(code)
}

func mustSetup(ctx context.Context) *postgres.PostgresContainer {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("forumapi_test"),
		postgres.WithUsername("forumapi"),
		postgres.WithPassword("forumapi"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to obtain connection string: %s", err)
	}

	pg, err = db.Connect(ctx, dsn, config.DatabaseConfig{}, logger.Nop())
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	if err := pg.MigrateUp(ctx); err != nil {
		log.Fatalf("failed to migrate: %s", err)
	}
	return container
}

func cleanTables(t *testing.T) {
	t.Helper()
	_, err := pg.Pool.Exec(context.Background(), `TRUNCATE comments, threads, authentications, users CASCADE`)
	require.NoError(t, err)
}

func fixedOptions(id string) Options {
	return Options{
		IDGenerator: func() string { return id },
		Clock:       func() time.Time { return time.Date(2023, 1, 1, 8, 19, 9, 775_000_000, time.UTC) },
	}
}

func addUser(t *testing.T, id, username string) string {
	t.Helper()
	u, err := NewUserRepository(pg, fixedOptions(id), logger.Nop()).
		AddUser(context.Background(), domain.RegisterUser{Username: username, Password: "secret", Fullname: "Dicoding Indonesia"})
	require.NoError(t, err)
	return u.ID
}

func TestUserRepository(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	users := NewUserRepository(pg, fixedOptions("123"), logger.Nop())

	require.NoError(t, users.VerifyAvailableUsername(ctx, "dicoding"))

	registered, err := users.AddUser(ctx, domain.RegisterUser{Username: "dicoding", Password: "secret_password", Fullname: "Dicoding Indonesia"})
	require.NoError(t, err)
	assert.Equal(t, &domain.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, registered)

	assert.True(t, domain.IsConflict(users.VerifyAvailableUsername(ctx, "dicoding")))

	pw, err := users.GetPasswordByUsername(ctx, "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "secret_password", pw)

	id, err := users.GetIDByUsername(ctx, "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)

	_, err = users.GetIDByUsername(ctx, "nobody")
	assert.True(t, domain.IsValidationError(err))
}

func TestAuthenticationRepository(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	auths := NewAuthenticationRepository(pg, logger.Nop())

	assert.True(t, domain.IsValidationError(auths.CheckAvailabilityToken(ctx, "token")))
	require.NoError(t, auths.AddToken(ctx, "token"))
	require.NoError(t, auths.CheckAvailabilityToken(ctx, "token"))
	require.NoError(t, auths.DeleteToken(ctx, "token"))
	assert.True(t, domain.IsValidationError(auths.CheckAvailabilityToken(ctx, "token")))
}

func TestThreadRepository(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	owner := addUser(t, "123", "dicoding")
	threads := NewThreadRepository(pg, fixedOptions("123"), logger.Nop())

	t.Run("AddThread persists and returns added thread", func(t *testing.T) {
		added, err := threads.AddThread(ctx, domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread", Owner: owner})
		require.NoError(t, err)
		assert.Equal(t, &domain.AddedThread{ID: "thread-123", Title: "sebuah thread", Owner: owner}, added)
	})

	t.Run("AddThread with unknown owner surfaces the store error", func(t *testing.T) {
		other := NewThreadRepository(pg, fixedOptions("456"), logger.Nop())
		_, err := other.AddThread(ctx, domain.NewThread{Title: "t", Body: "b", Owner: "user-xxx"})
		assert.Error(t, err)
	})

	t.Run("CheckAvailabilityThread", func(t *testing.T) {
		require.NoError(t, threads.CheckAvailabilityThread(ctx, "thread-123"))
		assert.True(t, domain.IsNotFound(threads.CheckAvailabilityThread(ctx, "thread-xxx")))
	})

	t.Run("GetDetailThread", func(t *testing.T) {
		detail, err := threads.GetDetailThread(ctx, "thread-123")
		require.NoError(t, err)
		assert.Equal(t, "thread-123", detail.ID)
		assert.Equal(t, "sebuah body thread", detail.Body)
		assert.Equal(t, "2023-01-01T08:19:09.775Z", detail.Date)
		assert.Equal(t, "dicoding", detail.Username)

		_, err = threads.GetDetailThread(ctx, "thread-xxx")
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCommentRepository(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()
	owner := addUser(t, "123", "dicoding")
	other := addUser(t, "456", "johndoe")
	thread, err := NewThreadRepository(pg, fixedOptions("123"), logger.Nop()).
		AddThread(ctx, domain.NewThread{Title: "t", Body: "b", Owner: owner})
	require.NoError(t, err)

	nop := logger.Nop()
	first := NewCommentRepository(pg, Options{
		IDGenerator: func() string { return "123" },
		Clock:       func() time.Time { return time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC) },
	}, nop)
	second := NewCommentRepository(pg, Options{
		IDGenerator: func() string { return "456" },
		Clock:       func() time.Time { return time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC) },
	}, nop)

	added, err := first.AddComment(ctx, domain.NewComment{UserID: owner, ThreadID: thread.ID, Content: "sebuah comment"})
	require.NoError(t, err)
	assert.Equal(t, &domain.AddedComment{ID: "comment-123", Content: "sebuah comment", Owner: owner}, added)

	_, err = second.AddComment(ctx, domain.NewComment{UserID: other, ThreadID: thread.ID, Content: "balasan"})
	require.NoError(t, err)

	t.Run("CheckAvailabilityComment", func(t *testing.T) {
		require.NoError(t, first.CheckAvailabilityComment(ctx, "comment-123"))
		assert.True(t, domain.IsNotFound(first.CheckAvailabilityComment(ctx, "comment-xxx")))
	})

	t.Run("VerifyCommentOwner", func(t *testing.T) {
		require.NoError(t, first.VerifyCommentOwner(ctx, "comment-123", owner))
		assert.True(t, domain.IsForbidden(first.VerifyCommentOwner(ctx, "comment-123", other)))
	})

	t.Run("DeleteComment soft deletes and masks on read", func(t *testing.T) {
		require.NoError(t, first.DeleteComment(ctx, "comment-456"))
		require.NoError(t, first.DeleteComment(ctx, "comment-456"))

		var isDeleted bool
		require.NoError(t, pg.Pool.QueryRow(ctx, `SELECT is_delete FROM comments WHERE id = 'comment-456'`).Scan(&isDeleted))
		assert.True(t, isDeleted)

		views, err := first.GetCommentsThread(ctx, thread.ID)
		require.NoError(t, err)
		assert.Equal(t, []domain.CommentView{
			{ID: "comment-123", Username: "dicoding", Date: "2023-01-01T08:00:00.000Z", Content: "sebuah comment"},
			{ID: "comment-456", Username: "johndoe", Date: "2023-01-01T09:00:00.000Z", Content: domain.DeletedCommentContent},
		}, views)
	})

	t.Run("GetCommentsThread of a thread without comments", func(t *testing.T) {
		views, err := first.GetCommentsThread(ctx, "thread-xxx")
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
