package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// UserService handles account registration.
type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHash
	log    *slog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHash, log *slog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

// RegisterUser validates the {username, password, fullname} payload, rejects
// taken usernames and stores the user with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, payload domain.Payload) (*domain.RegisteredUser, error) {
	user, err := domain.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}
	if err := s.users.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return nil, err
	}
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	registered, err := s.users.AddUser(ctx, *user)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", registered.ID, "username", registered.Username)
	return registered, nil
}
