package beam

import "fmt"

// ValidationError reports invalid beam configuration. It is always returned
// before any matrix is built.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// NormalizationError reports a mode shape that cannot be scaled by its
// reference value
type NormalizationError struct {
	Mode   int // 1-based mode number
	Reason string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("mode %d cannot be normalized: %s", e.Mode, e.Reason)
}
