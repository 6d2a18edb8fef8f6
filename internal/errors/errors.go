package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput       = errors.New("input is empty or contains only whitespace")
	ErrNotArray         = errors.New("JSON must be an array of objects")
	ErrInvalidIndent    = errors.New("indent must be 2 or 4")
	ErrUnknownDirection = errors.New("unknown conversion direction")
	ErrNoRootElement    = errors.New("XML document has no root element")
	ErrMultipleRoots    = errors.New("XML document has multiple root elements")
	ErrTextOutsideRoot  = errors.New("XML document has text outside the root element")
	ErrFileNotFound     = errors.New("file not found")
	ErrFileEmpty        = errors.New("file is empty")
	ErrOutputExists     = errors.New("output file already exists")
	ErrNoInput          = errors.New("no input provided: please specify a file with -i or pipe data to stdin")
	ErrInvalidFilePath  = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeSyntax   ErrorType = "syntax"
	ErrorTypeSemantic ErrorType = "semantic"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewSyntaxError wraps a parser failure. The parser's own message becomes the
// error message unchanged.
func NewSyntaxError(err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSyntax,
		Message: err.Error(),
		Err:     err,
	}
}

// NewSemanticError reports well-formed input that breaks a precondition of
// the conversion. The sentinel's text is the message.
func NewSemanticError(sentinel error) *AppError {
	return &AppError{
		Type:    ErrorTypeSemantic,
		Message: sentinel.Error(),
		Err:     sentinel,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// IsSyntax reports whether err is a syntax error.
func IsSyntax(err error) bool {
	return errors.Is(err, &AppError{Type: ErrorTypeSyntax})
}

// IsSemantic reports whether err is a semantic error.
func IsSemantic(err error) bool {
	return errors.Is(err, &AppError{Type: ErrorTypeSemantic})
}

// Message returns the text shown to a caller in place of output: the bare
// message of an AppError, without the type prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeSyntax:
			return fmt.Sprintf("Syntax error: %s", appErr.Message)
		case ErrorTypeSemantic:
			return fmt.Sprintf("Conversion error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide some data to convert."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	return fmt.Sprintf("Error: %v", err)
}
