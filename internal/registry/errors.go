package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSystem indicates a fluid system name with no registration.
	ErrUnknownSystem = errors.New("registry: unknown fluid system")

	// ErrDuplicateSystem indicates a second registration under one name.
	ErrDuplicateSystem = errors.New("registry: fluid system already registered")

	// ErrShape indicates a snapshot whose lists do not match the system counts.
	ErrShape = errors.New("registry: snapshot does not match system counts")
)

// ShapeError names the snapshot field that disagrees with the system.
type ShapeError struct {
	System string
	Field  string
	Want   int
	Got    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s.%s has %d entries, want %d", ErrShape, e.System, e.Field, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}
