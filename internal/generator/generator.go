package generator

import (
	"strings"

	"github.com/mcncl/textconv/internal/models"
)

const hexDigits = "0123456789abcdef"

// Generator is responsible for writing parsed values back out as JSON text
type Generator struct {
	// Indent is the number of spaces per nesting level. Zero writes
	// compact JSON with no whitespace at all.
	Indent int
}

// NewGenerator creates a new Generator instance
func NewGenerator(indent int) *Generator {
	return &Generator{Indent: indent}
}

// Generate renders v. Layout matches JSON.stringify: empty containers stay
// "[]" and "{}", keys are followed by ": " when indenting.
func (g *Generator) Generate(v models.JSONValue) string {
	var sb strings.Builder
	w := &writer{buf: &sb, indent: strings.Repeat(" ", max(g.Indent, 0))}
	v.Accept(w)
	return sb.String()
}

// Marshal renders v with the given indentation.
func Marshal(v models.JSONValue, indent int) string {
	return NewGenerator(indent).Generate(v)
}

// Compact renders v with no insignificant whitespace.
func Compact(v models.JSONValue) string {
	return NewGenerator(0).Generate(v)
}

// writer implements models.Visitor; depth is the current nesting level.
type writer struct {
	buf    *strings.Builder
	indent string
	depth  int
}

func (w *writer) newline() {
	if w.indent == "" {
		return
	}
	w.buf.WriteByte('\n')
	for range w.depth {
		w.buf.WriteString(w.indent)
	}
}

func (w *writer) VisitNull() {
	w.buf.WriteString("null")
}

func (w *writer) VisitBool(b models.JSONBool) {
	if b {
		w.buf.WriteString("true")
	} else {
		w.buf.WriteString("false")
	}
}

func (w *writer) VisitNumber(n models.JSONNumber) {
	w.buf.WriteString(string(n))
}

func (w *writer) VisitString(s models.JSONString) {
	writeQuoted(w.buf, string(s))
}

func (w *writer) VisitArray(a models.JSONArray) {
	if len(a) == 0 {
		w.buf.WriteString("[]")
		return
	}
	w.buf.WriteByte('[')
	w.depth++
	for i, elem := range a {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.newline()
		elem.Accept(w)
	}
	w.depth--
	w.newline()
	w.buf.WriteByte(']')
}

func (w *writer) VisitObject(o *models.JSONObject) {
	if o.Len() == 0 {
		w.buf.WriteString("{}")
		return
	}
	w.buf.WriteByte('{')
	w.depth++
	i := 0
	for key, value := range o.All() {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		i++
		w.newline()
		writeQuoted(w.buf, key)
		w.buf.WriteByte(':')
		if w.indent != "" {
			w.buf.WriteByte(' ')
		}
		value.Accept(w)
	}
	w.depth--
	w.newline()
	w.buf.WriteByte('}')
}

// writeQuoted writes s as a JSON string literal. Only the characters JSON
// requires are escaped; HTML-sensitive characters are left alone.
func writeQuoted(buf *strings.Builder, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[r>>4])
				buf.WriteByte(hexDigits[r&0xF])
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
