package config

import (
	"fmt"
	"time"
)

// InvalidValueError describes a configuration value that failed validation.
type InvalidValueError struct {
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", e.Value, e.Reason)
}

// ValidateDurationRange validates that min <= d <= max.
//
//	if err := ValidateDurationRange(timeout, 100*time.Millisecond, time.Minute); err != nil {
//	    return fmt.Errorf("elasticsearch timeout: %w", err)
//	}
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if d < min {
		return &InvalidValueError{Value: d.String(), Reason: fmt.Sprintf("below minimum %v", min)}
	}
	if d > max {
		return &InvalidValueError{Value: d.String(), Reason: fmt.Sprintf("exceeds maximum %v", max)}
	}
	return nil
}
