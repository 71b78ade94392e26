package algo

import "fmt"

// ConfigurationError reports an invalid option detected before any work
// runs: an unknown key field, an unknown algorithm tag, a bad direction, a
// non-positive size or trial count. It is always surfaced at construction
// or validation time, never from inside a sort or search call.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Option, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for the given option.
func NewConfigurationError(option, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Option: option,
		Reason: fmt.Sprintf(format, args...),
	}
}
