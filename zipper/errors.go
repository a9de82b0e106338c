package zipper

import "errors"

// Sentinel errors for package zipper.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrInvalidTarget is returned by Run when the target path does not
	// exist or is not a directory. It means "nothing to do", not a failed
	// run: no artifacts have been created when it is returned.
	ErrInvalidTarget = errors.New("target is not a valid directory")

	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory, got file")
)
