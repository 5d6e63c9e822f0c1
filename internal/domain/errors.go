package domain

import "errors"

// Task validation errors
var (
	ErrInvalidPriority = errors.New("priority must be between 1 (high) and 3 (low)")
	ErrInvalidStatus   = errors.New("invalid task status")
)

// Resource errors
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNotOwner         = errors.New("resource does not belong to user")
)
