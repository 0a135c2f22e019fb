package app

import (
	"errors"

	"minigrep/internal/config"
)

var ErrFileAccess = errors.New("cannot read file")

// Exit statuses, one per error kind.
const (
	ExitOK                    = 0
	ExitFileAccess            = 1
	ExitInsufficientArguments = 2
	ExitInvalidRegex          = 3
)

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrInsufficientArguments):
		return ExitInsufficientArguments
	case errors.Is(err, config.ErrInvalidRegex):
		return ExitInvalidRegex
	default:
		return ExitFileAccess
	}
}

// Kind is a stable label for err, used in logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrInsufficientArguments):
		return "insufficient_arguments"
	case errors.Is(err, config.ErrInvalidRegex):
		return "invalid_regex"
	case errors.Is(err, ErrFileAccess):
		return "file_access"
	default:
		return "unknown"
	}
}

func IsConfigErr(err error) bool {
	return errors.Is(err, config.ErrInsufficientArguments) || errors.Is(err, config.ErrInvalidRegex)
}

// Describe renders err for stderr.
func Describe(err error) string {
	if IsConfigErr(err) {
		return "Problem parsing arguments:\n" + err.Error()
	}
	return "Problem running the application: " + err.Error()
}
