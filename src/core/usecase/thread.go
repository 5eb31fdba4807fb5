package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// ThreadService handles thread creation and thread detail reads.
type ThreadService struct {
	threads  ports.ThreadRepository
	comments ports.CommentRepository
	log      *slog.Logger
}

func NewThreadService(threads ports.ThreadRepository, comments ports.CommentRepository, log *slog.Logger) *ThreadService {
	return &ThreadService{threads: threads, comments: comments, log: log}
}

// AddThread validates the {title, body, owner} payload and persists the thread.
func (s *ThreadService) AddThread(ctx context.Context, payload domain.Payload) (*domain.AddedThread, error) {
	thread, err := domain.NewNewThread(payload)
	if err != nil {
		return nil, err
	}
	added, err := s.threads.AddThread(ctx, *thread)
	if err != nil {
		return nil, err
	}
	s.log.Info("thread added", "thread_id", added.ID, "user_id", added.Owner)
	return added, nil
}

// DetailThread returns a thread with its masked comments, oldest first.
// The existence check runs before the detail read so a missing thread is
// always reported as not found.
func (s *ThreadService) DetailThread(ctx context.Context, payload domain.Payload) (*domain.ThreadDetail, error) {
	v, err := domain.RequireStrings("DETAIL_THREAD_USE_CASE", payload, "threadId")
	if err != nil {
		return nil, err
	}
	threadID := v["threadId"]

	if err := s.threads.CheckAvailabilityThread(ctx, threadID); err != nil {
		return nil, err
	}
	detail, err := s.threads.GetDetailThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.GetCommentsThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.CommentView{}
	}
	detail.Comments = comments
	return detail, nil
}
