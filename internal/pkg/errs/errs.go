package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin wrapper around cockroachdb/errors so the rest of the codebase does not
// import it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes err answer errors.Is for markErr while keeping the original
// message and stack for logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
