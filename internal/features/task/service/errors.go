package service

import "errors"

// Custom errors for task service
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already completed")
)
