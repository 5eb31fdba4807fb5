// Package memory provides an in-memory adapter honouring the same repository
// contracts as the Postgres adapter. It backs APP_STORE=memory and the HTTP
// end-to-end tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
	"forumapi/src/infra/repo"
)

var (
	_ ports.ThreadRepository         = (*Store)(nil)
	_ ports.CommentRepository        = (*Store)(nil)
	_ ports.UserRepository           = (*Store)(nil)
	_ ports.AuthenticationRepository = (*Store)(nil)
)

// ErrForeignKey mirrors a referential-integrity violation of the relational store.
var ErrForeignKey = errors.New("memory: foreign key violation")

type userRow struct {
	id, username, password, fullname string
}

type threadRow struct {
	id, title, body, date, owner string
}

type commentRow struct {
	id, owner, threadID, date, content string
	deleted                            bool
	seq                                int
}

// Store keeps users, threads, comments and refresh tokens in maps.
type Store struct {
	mu       sync.RWMutex
	opts     repo.Options
	users    map[string]userRow
	threads  map[string]threadRow
	comments map[string]commentRow
	tokens   map[string]struct{}
	seq      int
}

func NewStore(opts repo.Options) *Store {
	if opts.IDGenerator == nil {
		opts.IDGenerator = repo.DefaultIDGenerator
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Store{
		opts:     opts,
		users:    make(map[string]userRow),
		threads:  make(map[string]threadRow),
		comments: make(map[string]commentRow),
		tokens:   make(map[string]struct{}),
	}
}

func (s *Store) now() string {
	return repo.FormatDate(s.opts.Clock())
}

func (s *Store) Health(_ context.Context) error {
	return nil
}

// Users

func (s *Store) VerifyAvailableUsername(_ context.Context, username string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.userByName(username); ok {
		return domain.NewConflictError("username is not available")
	}
	return nil
}

func (s *Store) AddUser(_ context.Context, user domain.RegisterUser) (*domain.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userByName(user.Username); ok {
		return nil, domain.NewConflictError("username is not available")
	}
	row := userRow{
		id:       repo.UserIDPrefix + s.opts.IDGenerator(),
		username: user.Username,
		password: user.Password,
		fullname: user.Fullname,
	}
	s.users[row.id] = row
	return &domain.RegisteredUser{ID: row.id, Username: row.username, Fullname: row.fullname}, nil
}

func (s *Store) GetPasswordByUsername(_ context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userByName(username)
	if !ok {
		return "", domain.NewValidationError("USER_LOGIN.USERNAME_NOT_FOUND", "username", "username not found")
	}
	return u.password, nil
}

func (s *Store) GetIDByUsername(_ context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userByName(username)
	if !ok {
		return "", domain.NewValidationError("USER_LOGIN.USERNAME_NOT_FOUND", "username", "username not found")
	}
	return u.id, nil
}

func (s *Store) userByName(username string) (userRow, bool) {
	for _, u := range s.users {
		if u.username == username {
			return u, true
		}
	}
	return userRow{}, false
}

// Authentications

func (s *Store) AddToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *Store) CheckAvailabilityToken(_ context.Context, token string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.tokens[token]; !ok {
		return domain.NewValidationError("REFRESH_TOKEN.NOT_FOUND", "refreshToken", "refresh token not found")
	}
	return nil
}

func (s *Store) DeleteToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// Threads

func (s *Store) AddThread(_ context.Context, thread domain.NewThread) (*domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[thread.Owner]; !ok {
		return nil, ErrForeignKey
	}
	row := threadRow{
		id:    repo.ThreadIDPrefix + s.opts.IDGenerator(),
		title: thread.Title,
		body:  thread.Body,
		date:  s.now(),
		owner: thread.Owner,
	}
	s.threads[row.id] = row
	return domain.NewAddedThread(domain.Payload{"id": row.id, "title": row.title, "owner": row.owner})
}

func (s *Store) CheckAvailabilityThread(_ context.Context, threadID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.threads[threadID]; !ok {
		return domain.NewNotFoundError("thread")
	}
	return nil
}

func (s *Store) GetDetailThread(_ context.Context, threadID string) (*domain.ThreadDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.threads[threadID]
	if !ok {
		return nil, domain.NewNotFoundError("thread")
	}
	return &domain.ThreadDetail{
		ID:       t.id,
		Title:    t.title,
		Body:     t.body,
		Date:     t.date,
		Username: s.users[t.owner].username,
	}, nil
}

// Comments

func (s *Store) AddComment(_ context.Context, comment domain.NewComment) (*domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[comment.UserID]; !ok {
		return nil, ErrForeignKey
	}
	if _, ok := s.threads[comment.ThreadID]; !ok {
		return nil, ErrForeignKey
	}
	s.seq++
	row := commentRow{
		id:       repo.CommentIDPrefix + s.opts.IDGenerator(),
		owner:    comment.UserID,
		threadID: comment.ThreadID,
		date:     s.now(),
		content:  comment.Content,
		seq:      s.seq,
	}
	s.comments[row.id] = row
	return domain.NewAddedComment(domain.Payload{"id": row.id, "owner": row.owner, "content": row.content})
}

func (s *Store) CheckAvailabilityComment(_ context.Context, commentID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.comments[commentID]; !ok {
		return domain.NewNotFoundError("comment")
	}
	return nil
}

func (s *Store) VerifyCommentOwner(_ context.Context, commentID, userID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[commentID]
	if !ok || c.owner != userID {
		return domain.NewForbiddenError("cannot delete a comment owned by another user")
	}
	return nil
}

func (s *Store) DeleteComment(_ context.Context, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.comments[commentID]; ok {
		c.deleted = true
		s.comments[commentID] = c
	}
	return nil
}

func (s *Store) GetCommentsThread(_ context.Context, threadID string) ([]domain.CommentView, error) {
	s.mu.RLock()
	rows := make([]commentRow, 0)
	for _, c := range s.comments {
		if c.threadID == threadID {
			rows = append(rows, c)
		}
	}
	records := make([]domain.CommentRecord, 0, len(rows))
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].date != rows[j].date {
			return rows[i].date < rows[j].date
		}
		return rows[i].seq < rows[j].seq
	})
	for _, c := range rows {
		records = append(records, domain.CommentRecord{
			ID:       c.id,
			Username: s.users[c.owner].username,
			Date:     c.date,
			Content:  c.content,
			State:    domain.CommentStateOf(c.deleted),
		})
	}
	s.mu.RUnlock()

	detail, err := domain.NewDetailComment(domain.Payload{"comments": records})
	if err != nil {
		return nil, err
	}
	return detail.Comments, nil
}
