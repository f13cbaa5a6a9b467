package types

import "fmt"

// ConfigurationError represents an invalid ranking setup: unknown or negative
// weight keys, weights that cannot be normalized, a missing job requirement,
// or anything else that makes every candidate unscorable. Configuration
// errors are fatal to the whole ranking call and never produce partial output.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
