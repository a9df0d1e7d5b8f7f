package models

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when no post matches the lookup.
	ErrPostNotFound = errors.New("post not found")
)
