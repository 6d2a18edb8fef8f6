package csvconv

import (
	"strings"

	"github.com/mcncl/textconv/internal/generator"
	"github.com/mcncl/textconv/internal/models"
)

type state uint8

const (
	unquoted state = iota
	quoted
)

// splitLine tokenizes one physical CSV line. Fields are trimmed. A doubled
// quote inside a quoted section is a literal quote; an unmatched quote simply
// leaves the rest of the line quoted.
func splitLine(line string) []string {
	var (
		fields []string
		field  strings.Builder
		st     = unquoted
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && st == quoted && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case ch == '"' && st == quoted:
			st = unquoted
		case ch == '"':
			st = quoted
		case ch == ',' && st == unquoted:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(ch)
		}
	}

	return append(fields, strings.TrimSpace(field.String()))
}

// cellWriter renders a value as the text of one CSV cell.
type cellWriter struct {
	text string
}

func (w *cellWriter) VisitNull() { w.text = "" }

func (w *cellWriter) VisitBool(b models.JSONBool) {
	w.text = "false"
	if b {
		w.text = "true"
	}
}

func (w *cellWriter) VisitNumber(n models.JSONNumber) { w.text = string(n) }
func (w *cellWriter) VisitString(s models.JSONString) { w.text = string(s) }

// Nested containers have no CSV form; they are written as compact JSON.
func (w *cellWriter) VisitArray(a models.JSONArray)    { w.text = generator.Compact(a) }
func (w *cellWriter) VisitObject(o *models.JSONObject) { w.text = generator.Compact(o) }

func cellText(v models.JSONValue) string {
	var w cellWriter
	v.Accept(&w)
	return w.text
}
