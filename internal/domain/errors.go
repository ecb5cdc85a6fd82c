package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports an operation on a key absent from its document.
var ErrNotFound = errors.New("not found")

// ConflictError reports a rename onto a key already used by a different record.
type ConflictError struct {
	Key string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("key %q already exists", e.Key)
}

// InUseError reports a station deletion blocked by shows that still reference it.
type InUseError struct {
	Key        string
	References []string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("station %q is still referenced by: %s", e.Key, strings.Join(e.References, ", "))
}
