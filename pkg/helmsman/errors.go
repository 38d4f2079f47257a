package helmsman

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates an options file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported options format")

// ConfigError represents a failure to load or apply configuration.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "read", "decode_toml")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("helmsman: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("helmsman: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
