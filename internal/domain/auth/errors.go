package auth

import "errors"

var (
	// ErrInvalidCredentials deliberately carries no detail about which of
	// username or password was wrong.
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)
