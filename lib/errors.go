package lib

import (
	"errors"
	"fmt"
)

// ConfigError marks lexicon, override or rule configuration that is missing or
// malformed. It is fatal: a broken vocabulary must never reach the checks.
type ConfigError struct {
	msg string
	err error
}

func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

func WrapConfigError(err error, format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...), err: err}
}

func (e *ConfigError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

// IsConfigError reports whether any error in the chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
