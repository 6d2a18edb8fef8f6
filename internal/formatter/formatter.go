package formatter

import (
	"github.com/mcncl/textconv/internal/errors"
	"github.com/mcncl/textconv/internal/generator"
	"github.com/mcncl/textconv/internal/models"
	"github.com/mcncl/textconv/internal/parser"
)

// Formatter validates, pretty-prints and minifies JSON
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format re-serializes JSON with indent spaces per level (2 or 4). On a
// parse failure the parser's message is returned as the error and the output
// is empty.
func (f *Formatter) Format(text string, indent int) (string, error) {
	if !models.ValidIndent(indent) {
		return "", errors.NewSemanticError(errors.ErrInvalidIndent)
	}
	if parser.IsBlank(text) {
		return "", nil
	}

	value, err := parser.Decode([]byte(text))
	if err != nil {
		return "", err
	}
	return generator.Marshal(value, indent), nil
}

// Minify re-serializes JSON without any insignificant whitespace.
func (f *Formatter) Minify(text string) (string, error) {
	if parser.IsBlank(text) {
		return "", nil
	}

	value, err := parser.Decode([]byte(text))
	if err != nil {
		return "", err
	}
	return generator.Compact(value), nil
}

// IsValid reports whether text is a single well-formed JSON document. Blank
// text is not valid.
func (f *Formatter) IsValid(text string) bool {
	if parser.IsBlank(text) {
		return false
	}
	_, err := parser.Decode([]byte(text))
	return err == nil
}
