package service

import "errors"

// Custom errors for auth service
var (
	// ErrInvalidCredentials deliberately covers both an unknown email
	// and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrNoSession          = errors.New("no active session")
)
