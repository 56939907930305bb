package auth

import (
	"errors"

	"fitstack.dev/api/api/user"
)

var (
	ErrEmptyEmail         = errors.New("email cannot be empty")
	ErrEmptyName          = errors.New("first and last name cannot be empty")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingJTI         = errors.New("refresh token is missing jti")
	ErrTokenRevoked       = errors.New("refresh token has been revoked")

	// The password policy lives with the user package so profile
	// password changes enforce the same rules as registration.
	ErrEmptyPassword   = user.ErrEmptyPassword
	ErrPasswordTooWeak = user.ErrPasswordTooWeak

	ErrAccountLocked     = errors.New("account temporarily locked due to too many failed attempts")
	ErrRateLimitExceeded = errors.New("rate limit exceeded, please try again later")
)
