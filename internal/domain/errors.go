package domain

import (
	"errors"
	"fmt"
)

// Account and session errors
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)

// Store errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoMovies        = errors.New("no movies found")
)

// UpstreamError reports a failed call to the external recommender: either a
// non-success status, or a transport failure (Status zero, Err set).
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recommender request failed: %v", e.Err)
	}
	return fmt.Sprintf("recommender returned status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
