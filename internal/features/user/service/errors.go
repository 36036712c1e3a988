package service

import "errors"

// Custom errors for user service
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")
)
