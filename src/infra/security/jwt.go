package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"forumapi/src/core/domain"
	"forumapi/src/core/ports"
	"forumapi/src/infra/config"
)

var _ ports.TokenManager = (*JWTTokenManager)(nil)

// Claims carries the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// JWTTokenManager issues HS256 access and refresh tokens signed with separate keys.
type JWTTokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessAge  time.Duration
	refreshAge time.Duration
	now        func() time.Time
}

func NewJWTTokenManager(cfg config.AuthConfig) *JWTTokenManager {
	return &JWTTokenManager{
		accessKey:  []byte(cfg.AccessTokenKey),
		refreshKey: []byte(cfg.RefreshTokenKey),
		accessAge:  cfg.AccessTokenAge,
		refreshAge: cfg.RefreshTokenAge,
		now:        time.Now,
	}
}

func (m *JWTTokenManager) CreateAccessToken(userID string) (string, error) {
	return m.sign(userID, m.accessKey, m.accessAge)
}

func (m *JWTTokenManager) CreateRefreshToken(userID string) (string, error) {
	return m.sign(userID, m.refreshKey, m.refreshAge)
}

func (m *JWTTokenManager) VerifyRefreshToken(token string) error {
	if _, err := m.parse(token, m.refreshKey); err != nil {
		return domain.NewValidationError("REFRESH_TOKEN.INVALID", "refreshToken", "refresh token is invalid")
	}
	return nil
}

func (m *JWTTokenManager) DecodeUserID(token string) (string, error) {
	claims, err := m.parse(token, m.refreshKey)
	if err != nil {
		return "", domain.NewValidationError("REFRESH_TOKEN.INVALID", "refreshToken", "refresh token is invalid")
	}
	return claims.UserID, nil
}

func (m *JWTTokenManager) VerifyAccessToken(token string) (string, error) {
	claims, err := m.parse(token, m.accessKey)
	if err != nil {
		return "", domain.NewUnauthorizedError("invalid access token")
	}
	return claims.UserID, nil
}

func (m *JWTTokenManager) sign(userID string, key []byte, age time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(age)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func (m *JWTTokenManager) parse(token string, key []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
