package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a resource repository is not provided.
	ErrRepositoryRequired = errors.New("resource repository required")
)
