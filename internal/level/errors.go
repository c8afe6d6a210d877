package level

import (
	"errors"
	"fmt"
)

var ErrIncomplete = errors.New("incomplete timeline")

// IncompleteError is returned for a level whose descriptor or timeline
// cannot produce statistics. Song and Author hold whatever was parsed.
type IncompleteError struct {
	Song   string
	Author string
	Reason string
}

func (e *IncompleteError) Error() string {
	if e.Song == "" && e.Author == "" {
		return fmt.Sprintf("%v: %s", ErrIncomplete, e.Reason)
	}
	return fmt.Sprintf("%s - %s: %v: %s", e.Song, e.Author, ErrIncomplete, e.Reason)
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

// Incomplete builds an IncompleteError carrying these settings' metadata.
func (s *Settings) Incomplete(format string, a ...interface{}) *IncompleteError {
	return &IncompleteError{
		Song:   s.Song,
		Author: s.Author,
		Reason: fmt.Sprintf(format, a...),
	}
}
