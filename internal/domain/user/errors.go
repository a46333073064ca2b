package user

import "errors"

var (
	// ErrNotFound indicates the account does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates another account holds the username.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSuspended indicates the account is blocked from logging in.
	ErrSuspended = errors.New("account suspended")

	// ErrInvalidInput indicates a malformed account payload.
	ErrInvalidInput = errors.New("invalid user input")
)
