package domain

import "errors"

var (
	ErrUnknownScreen    = errors.New("unknown screen")
	ErrInvalidGoal      = errors.New("invalid user goal")
	ErrInvalidMode      = errors.New("invalid user mode")
	ErrUnknownAction    = errors.New("unknown onboarding action")
	ErrSectorNotFound   = errors.New("sector not found")
	ErrCategoryNotFound = errors.New("category not found")

	// ErrKeyNotFound is returned by key-value stores on a miss.
	ErrKeyNotFound = errors.New("key not found")
)
