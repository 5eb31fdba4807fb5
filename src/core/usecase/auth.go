package usecase

import (
	"context"
	"log/slog"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
)

// AuthService handles login, access-token refresh and logout.
type AuthService struct {
	users  ports.UserRepository
	auths  ports.AuthenticationRepository
	hasher ports.PasswordHash
	tokens ports.TokenManager
	log    *slog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	auths ports.AuthenticationRepository,
	hasher ports.PasswordHash,
	tokens ports.TokenManager,
	log *slog.Logger,
) *AuthService {
	return &AuthService{users: users, auths: auths, hasher: hasher, tokens: tokens, log: log}
}

// Login verifies credentials and issues an access/refresh token pair.
// The refresh token is stored so it can later be refreshed or revoked.
func (s *AuthService) Login(ctx context.Context, payload domain.Payload) (*domain.NewAuth, error) {
	login, err := domain.NewUserLogin(payload)
	if err != nil {
		return nil, err
	}
	hashed, err := s.users.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(login.Password, hashed); err != nil {
		return nil, err
	}
	userID, err := s.users.GetIDByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}

	access, err := s.tokens.CreateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.CreateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	if err := s.auths.AddToken(ctx, refresh); err != nil {
		return nil, err
	}
	s.log.Info("user logged in", "user_id", userID)
	return &domain.NewAuth{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshAccessToken exchanges a stored, valid refresh token for a new access token.
func (s *AuthService) RefreshAccessToken(ctx context.Context, payload domain.Payload) (string, error) {
	v, err := domain.RequireStrings("REFRESH_AUTHENTICATION_USE_CASE", payload, "refreshToken")
	if err != nil {
		return "", err
	}
	refresh := v["refreshToken"]

	if err := s.tokens.VerifyRefreshToken(refresh); err != nil {
		return "", err
	}
	if err := s.auths.CheckAvailabilityToken(ctx, refresh); err != nil {
		return "", err
	}
	userID, err := s.tokens.DecodeUserID(refresh)
	if err != nil {
		return "", err
	}
	return s.tokens.CreateAccessToken(userID)
}

// Logout revokes a stored refresh token.
func (s *AuthService) Logout(ctx context.Context, payload domain.Payload) error {
	v, err := domain.RequireStrings("DELETE_AUTHENTICATION_USE_CASE", payload, "refreshToken")
	if err != nil {
		return err
	}
	refresh := v["refreshToken"]

	if err := s.auths.CheckAvailabilityToken(ctx, refresh); err != nil {
		return err
	}
	return s.auths.DeleteToken(ctx, refresh)
}
