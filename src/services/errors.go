package services

import "errors"

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrInvalidCredentials indicates authentication failed. The same
	// error covers an unknown email and a wrong password so the response
	// never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrResumeNotFound indicates the requested resume does not exist
	ErrResumeNotFound = errors.New("resume not found")

	// ErrAdminExists indicates an admin with that email already exists
	ErrAdminExists = errors.New("admin with this email already exists")
)
