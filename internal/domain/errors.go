package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Session errors
	ErrParse           ErrorCode = "PARSE_ERROR"
	ErrInvalidState    ErrorCode = "INVALID_STATE"
	ErrDegenerateRange ErrorCode = "DEGENERATE_RANGE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

// NewParseError is returned when an answer is not an integer. Session state is untouched.
func NewParseError(raw string, err error) *DomainError {
	return NewError(ErrParse, fmt.Sprintf("answer %q is not an integer", raw), err)
}

// NewInvalidStateError reports an operation invoked outside its valid session state.
func NewInvalidStateError(operation string, state SessionState) *DomainError {
	return NewError(ErrInvalidState, fmt.Sprintf("cannot %s while session is %s", operation, state), nil)
}

func NewDifficultyNotConfiguredError() *DomainError {
	return NewError(ErrInvalidState, "difficulty has not been configured", nil)
}

func NewDegenerateRangeError(maxOperand int) *DomainError {
	return NewError(ErrDegenerateRange,
		fmt.Sprintf("division needs a max operand of at least 2, got %d", maxOperand), nil)
}
