// Package convert dispatches a text conversion to the converter for the
// requested direction and packages the outcome as a Result.
//
// Every call works on its own input and local state only, so Convert is safe
// to call from many goroutines at once.
package convert

import (
	"strings"
	"unicode/utf8"

	"github.com/mcncl/textconv/internal/csvconv"
	"github.com/mcncl/textconv/internal/errors"
	"github.com/mcncl/textconv/internal/formatter"
	"github.com/mcncl/textconv/internal/models"
	"github.com/mcncl/textconv/internal/parser"
	"github.com/mcncl/textconv/internal/xmlfmt"
	"github.com/mcncl/textconv/internal/yamlconv"
)

// Options tune a conversion.
type Options struct {
	// Indent is the indentation width for the format directions. Zero means
	// models.DefaultIndent; otherwise it must be 2 or 4.
	Indent int

	// HeaderCase rewrites CSV header names in csv-to-json.
	HeaderCase models.KeyStyle
}

// Result is the outcome of one conversion. Output and Error are never both
// set.
type Result struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`

	// Valid is true when non-blank input was converted without error.
	Valid bool `json:"valid"`

	// Err is the typed error behind Error.
	Err error `json:"-"`
}

// OK reports whether the conversion produced no error.
func (r Result) OK() bool { return r.Err == nil }

// Lines returns the number of lines in the output, zero when it is empty.
func (r Result) Lines() int {
	if r.Output == "" {
		return 0
	}
	return strings.Count(r.Output, "\n") + 1
}

// Chars returns the number of characters in the output.
func (r Result) Chars() int { return utf8.RuneCountInString(r.Output) }

// Convert runs the conversion named by dir over text.
func Convert(text string, dir Direction, opts Options) Result {
	output, err := dispatch(text, dir, opts)
	if err != nil {
		return Result{Error: errors.Message(err), Err: err}
	}
	return Result{Output: output, Valid: !parser.IsBlank(text)}
}

func dispatch(text string, dir Direction, opts Options) (string, error) {
	indent := opts.Indent
	if indent == 0 {
		indent = models.DefaultIndent
	}

	switch dir {
	case CSVToJSON:
		return csvconv.NewConverter(opts.HeaderCase).ToJSON(text)
	case JSONToCSV:
		return csvconv.NewConverter(opts.HeaderCase).FromJSON(text)
	case JSONFormat:
		return formatter.NewFormatter().Format(text, indent)
	case JSONMinify:
		return formatter.NewFormatter().Minify(text)
	case YAMLToJSON:
		return yamlconv.ToJSON(text)
	case JSONToYAML:
		return yamlconv.FromJSON(text)
	case XMLFormat:
		return xmlfmt.Format(text, indent)
	case XMLMinify:
		return xmlfmt.Minify(text)
	default:
		return "", errors.NewSemanticError(errors.ErrUnknownDirection)
	}
}
