package generator

import (
	"testing"

	"github.com/mcncl/textconv/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleObject() *models.JSONObject {
	inner := models.NewObject()
	inner.Set("x", models.JSONNumber("1"))

	obj := models.NewObject()
	obj.Set("name", models.JSONString("Ada"))
	obj.Set("tags", models.JSONArray{models.JSONString("a"), models.JSONBool(true)})
	obj.Set("empty", models.JSONArray{})
	obj.Set("nested", inner)
	obj.Set("none", models.Null)
	return obj
}

func TestGenerate_Indented(t *testing.T) {
	expected := `{
  "name": "Ada",
  "tags": [
    "a",
    true
  ],
  "empty": [],
  "nested": {
    "x": 1
  },
  "none": null
}`
	assert.Equal(t, expected, Marshal(sampleObject(), 2))
}

func TestGenerate_FourSpaces(t *testing.T) {
	obj := models.NewObject()
	obj.Set("a", models.JSONArray{models.JSONNumber("1")})

	expected := "{\n    \"a\": [\n        1\n    ]\n}"
	assert.Equal(t, expected, NewGenerator(4).Generate(obj))
}

func TestCompact(t *testing.T) {
	expected := `{"name":"Ada","tags":["a",true],"empty":[],"nested":{"x":1},"none":null}`
	assert.Equal(t, expected, Compact(sampleObject()))
}

func TestGenerate_EmptyContainers(t *testing.T) {
	assert.Equal(t, "{}", Marshal(models.NewObject(), 2))
	assert.Equal(t, "[]", Marshal(models.JSONArray{}, 2))
}

func TestGenerate_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    models.JSONValue
		expected string
	}{
		{"null", models.Null, "null"},
		{"true", models.JSONBool(true), "true"},
		{"false", models.JSONBool(false), "false"},
		{"number text written as held", models.JSONNumber("1.5e-7"), "1.5e-7"},
		{"plain string", models.JSONString("hi"), `"hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Marshal(tt.value, 2))
		})
	}
}

func TestGenerate_StringEscaping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"quote and backslash", `say "hi" \ bye`, `"say \"hi\" \\ bye"`},
		{"control whitespace", "a\nb\tc\r", `"a\nb\tc\r"`},
		{"backspace and formfeed", "\b\f", `"\b\f"`},
		{"other control characters", "\x01\x1f", `"\u0001\u001f"`},
		{"html is not escaped", "<a>&</a>", `"<a>&</a>"`},
		{"unicode kept", "héllo ✓", `"héllo ✓"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compact(models.JSONString(tt.input)))
		})
	}
}

func TestGenerate_NegativeIndentIsCompact(t *testing.T) {
	assert.Equal(t, `[1]`, Marshal(models.JSONArray{models.JSONNumber("1")}, -2))
}
