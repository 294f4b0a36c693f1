package domain

import (
	"errors"
	"fmt"
)

// Rule identifies the validation rule that rejected a candidate
type Rule string

const (
	RuleNameEmpty     Rule = "name_empty"
	RuleNameLength    Rule = "name_length"
	RuleNameLetters   Rule = "name_letters"
	RuleNameDigit     Rule = "name_digit"
	RuleValuePositive Rule = "value_positive"
	RuleDateInvalid   Rule = "date_invalid"
)

// ValidationError is returned when a candidate fails local validation.
// It never reaches the network.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequestError is returned when a call to the ativos service fails, either
// at the transport level or with a non-2xx status.
type RequestError struct {
	Op         string // "list" or "create"
	StatusCode int    // 0 when no response was received
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s request failed", e.Op)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// IsRequestError reports whether err is (or wraps) a RequestError
func IsRequestError(err error) bool {
	var rErr *RequestError
	return errors.As(err, &rErr)
}
