package route

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a parameter read failed.
var (
	// ErrNoSegment indicates the route has no segment at the reader's level,
	// usually because the view tree is nested deeper than the active route.
	ErrNoSegment = errors.New("no segment at route level")

	// ErrMissingParameter indicates the segment does not carry the key.
	ErrMissingParameter = errors.New("parameter not set")

	// ErrParameterType indicates the stored value has a different type than the key.
	ErrParameterType = errors.New("parameter type mismatch")
)

// ParameterError is raised (as a panic value) by Param when the view tree does
// not match the declared route structure. It is a programming error and is
// never meant to be recovered from.
type ParameterError struct {
	Key   string // Name of the key that was read
	Level int    // Level of the ActivatedRoute that read it
	Err   error  // One of the sentinel errors above
	Got   any    // Stored value, set for ErrParameterType
}

func (e *ParameterError) Error() string {
	if errors.Is(e.Err, ErrParameterType) {
		return fmt.Sprintf("route: parameter %q at level %d: %v: got %T", e.Key, e.Level, e.Err, e.Got)
	}
	return fmt.Sprintf("route: parameter %q at level %d: %v", e.Key, e.Level, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}

// IsParameterError checks if an error (or recovered panic value) is a ParameterError.
func IsParameterError(err error) bool {
	var paramErr *ParameterError
	return errors.As(err, &paramErr)
}
