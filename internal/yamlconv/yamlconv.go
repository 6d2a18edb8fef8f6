// Package yamlconv converts between JSON and a small YAML subset.
//
// Reading is flat: every "key: value" line lands in one top-level mapping and
// indentation is ignored. Writing handles nested objects and arrays, two
// spaces per level.
package yamlconv

import (
	"strings"

	"github.com/mcncl/textconv/internal/analyzer"
	"github.com/mcncl/textconv/internal/generator"
	"github.com/mcncl/textconv/internal/models"
	"github.com/mcncl/textconv/internal/parser"
)

const (
	jsonIndent = 2
	yamlIndent = "  "
)

// ToJSON reads "key: value" lines into one flat JSON object, 2-space
// indented. Blank lines, "#" comments and lines without a colon are skipped.
func ToJSON(text string) (string, error) {
	if parser.IsBlank(text) {
		return "", nil
	}

	result := models.NewObject()
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = analyzer.StripBullet(strings.TrimSpace(key))
		result.Set(key, analyzer.CoerceScalar(strings.TrimSpace(value)))
	}

	return generator.Marshal(result, jsonIndent), nil
}

// FromJSON parses JSON text and renders it with Marshal.
func FromJSON(text string) (string, error) {
	if parser.IsBlank(text) {
		return "", nil
	}

	value, err := parser.Decode([]byte(text))
	if err != nil {
		return "", err
	}
	return Marshal(value), nil
}

// Marshal renders v as YAML. Scalars are written inline; arrays and objects
// open a block one level deeper.
func Marshal(v models.JSONValue) string {
	return strings.TrimPrefix(marshal(v, 0), "\n")
}

func marshal(v models.JSONValue, indent int) string {
	w := &yamlWriter{indent: indent}
	v.Accept(w)
	return w.out
}

// yamlWriter renders one value at a given nesting level. Container output
// starts with a newline so that it can follow "key:" or "- " directly.
type yamlWriter struct {
	indent int
	out    string
}

func (w *yamlWriter) VisitNull() { w.out = "null" }

func (w *yamlWriter) VisitBool(b models.JSONBool) {
	w.out = "false"
	if b {
		w.out = "true"
	}
}

func (w *yamlWriter) VisitNumber(n models.JSONNumber) { w.out = string(n) }

func (w *yamlWriter) VisitString(s models.JSONString) {
	str := string(s)
	if strings.ContainsAny(str, "\n\"") {
		str = `"` + str + `"`
	}
	w.out = str
}

func (w *yamlWriter) VisitArray(a models.JSONArray) {
	spaces := strings.Repeat(yamlIndent, w.indent)
	var sb strings.Builder
	for _, item := range a {
		sb.WriteString("\n")
		sb.WriteString(spaces)
		sb.WriteString("- ")
		sb.WriteString(marshal(item, w.indent+1))
	}
	w.out = sb.String()
}

func (w *yamlWriter) VisitObject(o *models.JSONObject) {
	spaces := strings.Repeat(yamlIndent, w.indent)
	var sb strings.Builder
	for key, value := range o.All() {
		sb.WriteString("\n")
		sb.WriteString(spaces)
		sb.WriteString(key)
		sb.WriteString(":")
		if !models.IsContainer(value) {
			sb.WriteString(" ")
		}
		sb.WriteString(marshal(value, w.indent+1))
	}
	w.out = sb.String()
}
