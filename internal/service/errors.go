package service

import "errors"

var (
	// ErrNotFound is returned when a transaction does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransaction wraps every transaction validation failure.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidUser wraps registration input failures.
	ErrInvalidUser = errors.New("invalid user")
)
