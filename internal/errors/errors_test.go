package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeConfig,
				Message: "bad indent",
				Err:     nil,
			},
			expected: "config: bad indent",
		},
		{
			name:     "syntax error does not repeat the parser message",
			appError: NewSyntaxError(errors.New("unexpected end of JSON input")),
			expected: "syntax: unexpected end of JSON input",
		},
		{
			name:     "semantic error",
			appError: NewSemanticError(ErrNotArray),
			expected: "semantic: JSON must be an array of objects",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	assert.Equal(t, wrappedErr, appErr.Unwrap())
	assert.ErrorIs(t, NewSemanticError(ErrNotArray), ErrNotArray)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: &AppError{Type: ErrorTypeInput, Message: "test message"},
			target:   &AppError{Type: ErrorTypeInput, Message: "different message", Err: errors.New("some error")},
			expected: true,
		},
		{
			name:     "different type",
			appError: &AppError{Type: ErrorTypeInput, Message: "test message"},
			target:   &AppError{Type: ErrorTypeSyntax, Message: "test message"},
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: &AppError{Type: ErrorTypeInput, Message: "test message"},
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Is(tt.target))
		})
	}
}

func TestIsSyntaxAndIsSemantic(t *testing.T) {
	syntaxErr := fmt.Errorf("wrapped: %w", NewSyntaxError(errors.New("boom")))
	semanticErr := NewSemanticError(ErrInvalidIndent)

	assert.True(t, IsSyntax(syntaxErr))
	assert.False(t, IsSemantic(syntaxErr))
	assert.True(t, IsSemantic(semanticErr))
	assert.False(t, IsSyntax(semanticErr))
	assert.False(t, IsSyntax(errors.New("plain")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "unexpected end of JSON input", Message(NewSyntaxError(errors.New("unexpected end of JSON input"))))
	assert.Equal(t, "JSON must be an array of objects", Message(NewSemanticError(ErrNotArray)))
	assert.Equal(t, "plain", Message(errors.New("plain")))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("failed to read file", nil),
			expected: "Input error: failed to read file",
		},
		{
			name:     "syntax error",
			err:      NewSyntaxError(errors.New("invalid character 'x' looking for beginning of value")),
			expected: "Syntax error: invalid character 'x' looking for beginning of value",
		},
		{
			name:     "semantic error",
			err:      NewSemanticError(ErrNotArray),
			expected: "Conversion error: JSON must be an array of objects",
		},
		{
			name:     "config error",
			err:      NewConfigError("failed to parse config file", nil),
			expected: "Configuration error: failed to parse config file",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide some data to convert.",
		},
		{
			name:     "standard error - no input",
			err:      ErrNoInput,
			expected: "Error: No input provided. Please specify a file with -i or pipe data to stdin.",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
