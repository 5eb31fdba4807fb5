package ports

// PasswordHash hashes and compares user passwords.
type PasswordHash interface {
	Hash(password string) (string, error)
	// Compare returns an unauthorized error if password does not match hashed.
	Compare(password, hashed string) error
}

// TokenManager issues and verifies access and refresh tokens.
type TokenManager interface {
	CreateAccessToken(userID string) (string, error)
	CreateRefreshToken(userID string) (string, error)
	// VerifyRefreshToken returns a validation error for an invalid refresh token.
	VerifyRefreshToken(token string) error
	// DecodeUserID returns the user id carried by a verified refresh token.
	DecodeUserID(token string) (string, error)
	// VerifyAccessToken returns the user id carried by a valid access token.
	VerifyAccessToken(token string) (string, error)
}
