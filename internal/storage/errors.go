package storage

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict (e.g., duplicate key)")
	ErrDuplicateEmail = errors.New("email or username already in use")
	ErrReferenced     = errors.New("resource is referenced by other records")
)
