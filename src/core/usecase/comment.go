package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// CommentService handles comment creation and soft deletion.
type CommentService struct {
	threads  ports.ThreadRepository
	comments ports.CommentRepository
	log      *slog.Logger
}

func NewCommentService(threads ports.ThreadRepository, comments ports.CommentRepository, log *slog.Logger) *CommentService {
	return &CommentService{threads: threads, comments: comments, log: log}
}

// AddComment validates the {userId, threadId, content} payload, verifies the
// thread exists and persists the comment. Nothing is inserted for a missing thread.
func (s *CommentService) AddComment(ctx context.Context, payload domain.Payload) (*domain.AddedComment, error) {
	comment, err := domain.NewNewComment(payload)
	if err != nil {
		return nil, err
	}
	if err := s.threads.CheckAvailabilityThread(ctx, comment.ThreadID); err != nil {
		return nil, err
	}
	added, err := s.comments.AddComment(ctx, *comment)
	if err != nil {
		return nil, err
	}
	s.log.Info("comment added",
		"comment_id", added.ID,
		"thread_id", comment.ThreadID,
		"user_id", comment.UserID,
	)
	return added, nil
}

// DeleteComment soft-deletes a comment on behalf of its owner.
// Order: thread exists, comment exists, caller owns the comment, delete.
func (s *CommentService) DeleteComment(ctx context.Context, payload domain.Payload) error {
	v, err := domain.RequireStrings("DELETE_COMMENT_USE_CASE", payload, "userId", "threadId", "commentId")
	if err != nil {
		return err
	}
	userID, threadID, commentID := v["userId"], v["threadId"], v["commentId"]

	if err := s.threads.CheckAvailabilityThread(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.CheckAvailabilityComment(ctx, commentID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, commentID, userID); err != nil {
		return err
	}
	if err := s.comments.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.log.Info("comment deleted", "comment_id", commentID, "thread_id", threadID, "user_id", userID)
	return nil
}
