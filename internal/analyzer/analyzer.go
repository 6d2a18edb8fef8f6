package analyzer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/textconv/internal/models"
)

// Patterns for raw scalar text
var (
	// Plain decimal notation only: no hex, no Infinity, no digit separators.
	numericRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	bulletRegex  = regexp.MustCompile(`^-\s*`)
)

// CoerceCell types a CSV cell: exact "true"/"false" become booleans, numeric
// text becomes a number and anything else, including "", stays a string.
func CoerceCell(raw string) models.JSONValue {
	switch raw {
	case "true":
		return models.JSONBool(true)
	case "false":
		return models.JSONBool(false)
	}
	if n, ok := ParseNumber(raw); ok {
		return n
	}
	return models.JSONString(raw)
}

// CoerceScalar types a YAML scalar. A double-quoted value is a string with
// the quotes removed and no further typing; "null" is recognized in
// addition to the CSV rules.
func CoerceScalar(raw string) models.JSONValue {
	if strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return models.JSONString(StripQuotes(raw))
	}
	if raw == "null" {
		return models.Null
	}
	return CoerceCell(raw)
}

// StripQuotes removes one double quote from each end of a value that both
// starts and ends with one. A lone `"` becomes the empty string.
func StripQuotes(s string) string {
	if !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}

// StripBullet removes a leading list marker ("-" and any following
// whitespace) from a key.
func StripBullet(key string) string {
	return bulletRegex.ReplaceAllString(key, "")
}

// ParseNumber reports whether raw is a finite decimal number and returns it
// in canonical form.
func ParseNumber(raw string) (models.JSONNumber, bool) {
	if raw == "" || !numericRegex.MatchString(raw) {
		return "", false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) {
		return "", false
	}
	return models.JSONNumber(models.FormatNumber(f)), true
}

// NormalizeKey rewrites a header name into the requested key style.
func NormalizeKey(key string, style models.KeyStyle) string {
	switch style {
	case models.KeyStyleSnake:
		return strcase.ToSnake(key)
	case models.KeyStyleCamel:
		return strcase.ToCamel(key)
	case models.KeyStyleLowerCamel:
		return strcase.ToLowerCamel(key)
	case models.KeyStyleKebab:
		return strcase.ToKebab(key)
	default:
		return key
	}
}

// AnalyzeTable turns the elements of a JSON array into a Table. Elements that
// are not objects become nil records.
func AnalyzeTable(arr models.JSONArray) models.Table {
	records := make([]*models.JSONObject, len(arr))
	for i, elem := range arr {
		if obj, ok := elem.(*models.JSONObject); ok {
			records[i] = obj
		}
	}
	return models.Table{Records: records}
}
