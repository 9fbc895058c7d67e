package config

import "fmt"

// ConfigurationError reports a malformed configuration or level file.
// Configuration errors surface at startup and are fatal.
type ConfigurationError struct {
	Source string // file name or section the error was found in
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Source, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErrorf(source, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Source: source, Reason: fmt.Sprintf(format, args...)}
}
