// Package csvconv converts between CSV text and JSON arrays of flat objects.
//
// Parsing is line oriented and forgiving: a stray quote is dropped and leaves
// the rest of its line quoted, and quoted fields cannot span lines.
package csvconv

import (
	"strings"

	"github.com/mcncl/textconv/internal/analyzer"
	"github.com/mcncl/textconv/internal/errors"
	"github.com/mcncl/textconv/internal/generator"
	"github.com/mcncl/textconv/internal/models"
	"github.com/mcncl/textconv/internal/parser"
)

// jsonIndent is the indentation of CSV -> JSON output.
const jsonIndent = 2

// Converter converts CSV to JSON and back
type Converter struct {
	// HeaderCase rewrites header names before they become object keys.
	HeaderCase models.KeyStyle
}

// NewConverter creates a new Converter instance
func NewConverter(headerCase models.KeyStyle) *Converter {
	return &Converter{HeaderCase: headerCase}
}

// ToJSON converts CSV text to a 2-space indented JSON array of objects. The
// first line is the header. Blank input gives empty output.
func (c *Converter) ToJSON(text string) (string, error) {
	if parser.IsBlank(text) {
		return "", nil
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")

	header := splitLine(lines[0])
	for i, name := range header {
		name = strings.TrimSuffix(strings.TrimPrefix(name, `"`), `"`)
		header[i] = analyzer.NormalizeKey(name, c.HeaderCase)
	}

	table := models.Table{Records: make([]*models.JSONObject, 0, len(lines)-1)}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		values := splitLine(line)
		record := models.NewObject()
		for i, name := range header {
			raw := ""
			if i < len(values) {
				raw = values[i]
			}
			record.Set(name, analyzer.CoerceCell(analyzer.StripQuotes(raw)))
		}
		table.Records = append(table.Records, record)
	}

	return generator.Marshal(table.Array(), jsonIndent), nil
}

// FromJSON converts a JSON array of objects to CSV. The header is the union
// of all object keys in first-seen order; absent keys give empty cells.
func (c *Converter) FromJSON(text string) (string, error) {
	if parser.IsBlank(text) {
		return "", nil
	}

	ir, err := parser.ParseString(text)
	if err != nil {
		return "", err
	}
	if !ir.RootIsArray {
		return "", errors.NewSemanticError(errors.ErrNotArray)
	}
	arr := ir.Root.(models.JSONArray)
	if len(arr) == 0 {
		return "", nil
	}

	table := analyzer.AnalyzeTable(arr)
	header := table.Header()

	rows := make([]string, 0, len(table.Records)+1)
	cells := make([]string, len(header))
	for i, name := range header {
		cells[i] = escape(name)
	}
	rows = append(rows, strings.Join(cells, ","))

	for _, record := range table.Records {
		for i, name := range header {
			cells[i] = ""
			if value, ok := record.Get(name); ok {
				cells[i] = escape(cellText(value))
			}
		}
		rows = append(rows, strings.Join(cells, ","))
	}

	return strings.TrimRight(strings.Join(rows, "\n"), "\n"), nil
}

// escape quotes a cell holding a comma, a double quote or a newline, doubling
// any quotes inside it.
func escape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
