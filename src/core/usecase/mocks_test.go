package usecase

import (
	"context"

	"forumapi/src/core/domain"
)

// callLog records the order in which collaborators are invoked.
type callLog struct {
	calls []string
}

func (l *callLog) record(name string) {
	l.calls = append(l.calls, name)
}

type mockThreadRepo struct {
	log          *callLog
	availableErr error
	addFn        func(domain.NewThread) (*domain.AddedThread, error)
	detail       *domain.ThreadDetail
	detailErr    error
}

func (m *mockThreadRepo) Health(context.Context) error { return nil }

func (m *mockThreadRepo) AddThread(_ context.Context, t domain.NewThread) (*domain.AddedThread, error) {
	m.log.record("threads.AddThread")
	return m.addFn(t)
}

func (m *mockThreadRepo) CheckAvailabilityThread(context.Context, string) error {
	m.log.record("threads.CheckAvailabilityThread")
	return m.availableErr
}

func (m *mockThreadRepo) GetDetailThread(context.Context, string) (*domain.ThreadDetail, error) {
	m.log.record("threads.GetDetailThread")
	return m.detail, m.detailErr
}

type mockCommentRepo struct {
	log          *callLog
	addFn        func(domain.NewComment) (*domain.AddedComment, error)
	availableErr error
	ownerErr     error
	deleteErr    error
	deleted      []string
	views        []domain.CommentView
}

func (m *mockCommentRepo) Health(context.Context) error { return nil }

func (m *mockCommentRepo) AddComment(_ context.Context, c domain.NewComment) (*domain.AddedComment, error) {
	m.log.record("comments.AddComment")
	return m.addFn(c)
}

func (m *mockCommentRepo) CheckAvailabilityComment(context.Context, string) error {
	m.log.record("comments.CheckAvailabilityComment")
	return m.availableErr
}

func (m *mockCommentRepo) VerifyCommentOwner(context.Context, string, string) error {
	m.log.record("comments.VerifyCommentOwner")
	return m.ownerErr
}

func (m *mockCommentRepo) DeleteComment(_ context.Context, id string) error {
	m.log.record("comments.DeleteComment")
	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

func (m *mockCommentRepo) GetCommentsThread(context.Context, string) ([]domain.CommentView, error) {
	m.log.record("comments.GetCommentsThread")
	return m.views, nil
}

type mockUserRepo struct {
	log          *callLog
	availableErr error
	added        *domain.RegisterUser
	password     string
	passwordErr  error
	id           string
}

func (m *mockUserRepo) Health(context.Context) error { return nil }

func (m *mockUserRepo) VerifyAvailableUsername(context.Context, string) error {
	m.log.record("users.VerifyAvailableUsername")
	return m.availableErr
}

func (m *mockUserRepo) AddUser(_ context.Context, u domain.RegisterUser) (*domain.RegisteredUser, error) {
	m.log.record("users.AddUser")
	m.added = &u
	return &domain.RegisteredUser{ID: "user-123", Username: u.Username, Fullname: u.Fullname}, nil
}

func (m *mockUserRepo) GetPasswordByUsername(context.Context, string) (string, error) {
	m.log.record("users.GetPasswordByUsername")
	return m.password, m.passwordErr
}

func (m *mockUserRepo) GetIDByUsername(context.Context, string) (string, error) {
	m.log.record("users.GetIDByUsername")
	return m.id, nil
}

type mockAuthRepo struct {
	log          *callLog
	tokens       map[string]bool
	availableErr error
}

func (m *mockAuthRepo) Health(context.Context) error { return nil }

func (m *mockAuthRepo) AddToken(_ context.Context, token string) error {
	m.log.record("auths.AddToken")
	if m.tokens == nil {
		m.tokens = map[string]bool{}
	}
	m.tokens[token] = true
	return nil
}

func (m *mockAuthRepo) CheckAvailabilityToken(context.Context, string) error {
	m.log.record("auths.CheckAvailabilityToken")
	return m.availableErr
}

func (m *mockAuthRepo) DeleteToken(_ context.Context, token string) error {
	m.log.record("auths.DeleteToken")
	delete(m.tokens, token)
	return nil
}

type mockHasher struct {
	log        *callLog
	compareErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	m.log.record("hasher.Hash")
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(string, string) error {
	m.log.record("hasher.Compare")
	return m.compareErr
}

type mockTokens struct {
	log       *callLog
	verifyErr error
}

func (m *mockTokens) CreateAccessToken(userID string) (string, error) {
	m.log.record("tokens.CreateAccessToken")
	return "access:" + userID, nil
}

func (m *mockTokens) CreateRefreshToken(userID string) (string, error) {
	m.log.record("tokens.CreateRefreshToken")
	return "refresh:" + userID, nil
}

func (m *mockTokens) VerifyRefreshToken(string) error {
	m.log.record("tokens.VerifyRefreshToken")
	return m.verifyErr
}

func (m *mockTokens) DecodeUserID(string) (string, error) {
	m.log.record("tokens.DecodeUserID")
	return "user-123", nil
}

func (m *mockTokens) VerifyAccessToken(token string) (string, error) {
	m.log.record("tokens.VerifyAccessToken")
	return "user-123", nil
}
