// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"forumapi/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ThreadRepository persists and reads threads.
type ThreadRepository interface {
	Repository

	AddThread(ctx context.Context, thread domain.NewThread) (*domain.AddedThread, error)
	// CheckAvailabilityThread returns a not-found error if the thread does not exist.
	CheckAvailabilityThread(ctx context.Context, threadID string) error
	// GetDetailThread returns the thread with its owner's username and no comments.
	GetDetailThread(ctx context.Context, threadID string) (*domain.ThreadDetail, error)
}

// CommentRepository persists, soft-deletes and projects comments.
type CommentRepository interface {
	Repository

	AddComment(ctx context.Context, comment domain.NewComment) (*domain.AddedComment, error)
	// CheckAvailabilityComment returns a not-found error if the comment does not exist.
	CheckAvailabilityComment(ctx context.Context, commentID string) error
	// VerifyCommentOwner returns a forbidden error unless userID owns the comment.
	VerifyCommentOwner(ctx context.Context, commentID, userID string) error
	// DeleteComment soft-deletes the comment. Deleting twice is a no-op.
	DeleteComment(ctx context.Context, commentID string) error
	// GetCommentsThread returns the masked comment projection of a thread,
	// ascending by creation date.
	GetCommentsThread(ctx context.Context, threadID string) ([]domain.CommentView, error)
}

// UserRepository persists forum accounts.
type UserRepository interface {
	Repository

	// VerifyAvailableUsername returns a conflict error if the username is taken.
	VerifyAvailableUsername(ctx context.Context, username string) error
	// AddUser stores the user; Password must already be hashed.
	AddUser(ctx context.Context, user domain.RegisterUser) (*domain.RegisteredUser, error)
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIDByUsername(ctx context.Context, username string) (string, error)
}

// AuthenticationRepository stores issued refresh tokens.
type AuthenticationRepository interface {
	Repository

	AddToken(ctx context.Context, token string) error
	// CheckAvailabilityToken returns a validation error if the token is not stored.
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}
