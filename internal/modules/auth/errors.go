package auth

import "errors"

var (
	// ErrInvalidCredentials covers both the unknown-username and the
	// wrong-password branch of login so the response never reveals
	// which check failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrEmailTaken      = errors.New("email already exists")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidID       = errors.New("invalid account id")

	// ErrInvalidToken is a refresh-path token that fails signature or
	// shape verification, or whose account no longer exists.
	ErrInvalidToken = errors.New("invalid refresh token")

	// ErrSessionRevoked is the membership-check failure: the token was
	// validly signed but absent from the account's list, so every
	// session for that account has just been revoked.
	ErrSessionRevoked = errors.New("session revoked")
)
