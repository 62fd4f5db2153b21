package domain

import (
	"errors"
	"fmt"
)

// ErrArticleNotFound returned when an article row doesn't exist
var ErrArticleNotFound = errors.New("article not found")

// ErrModelNotConfigured returned on model call when endpoint, model or api key is missing
var ErrModelNotConfigured = errors.New("model is not configured")

// FetchError is a failed call to the external feed. The ingestion iteration is skipped
// and retried on the next interval.
type FetchError struct {
	Category string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch category %q: %v", e.Category, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ClassificationError is a failed model call or unusable model response for one article
type ClassificationError struct {
	ArticleID int64
	Err       error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify article %d: %v", e.ArticleID, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// PersistenceError is a failed store write for one article
type PersistenceError struct {
	ArticleID int64
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist article %d: %v", e.ArticleID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
