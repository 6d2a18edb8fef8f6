package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mcncl/textconv/internal/errors" // Custom errors package
	"github.com/mcncl/textconv/internal/models"
)

// Parse reads a complete JSON document from reader into an
// IntermediateRepresentation, keeping object keys in document order.
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read JSON input", err)
	}
	root, err := Decode(data)
	if err != nil {
		return models.IntermediateRepresentation{}, err
	}
	return models.IntermediateRepresentation{
		Root:        root,
		RootIsArray: root.Kind() == models.KindArray,
	}, nil
}

// Decode parses one JSON document. Syntax failures are returned as syntax
// errors carrying encoding/json's message unchanged, e.g.
// "unexpected end of JSON input".
func Decode(data []byte) (models.JSONValue, error) {
	// Validate first so the error text is the one json.Unmarshal reports,
	// including trailing data after the top-level value.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewSyntaxError(err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber() // Canonicalised in canonicalNumber

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, errors.NewSyntaxError(err)
	}
	return value, nil
}

func decodeValue(decoder *json.Decoder) (models.JSONValue, error) {
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return models.JSONString(t), nil
	case json.Number:
		return canonicalNumber(t)
	case bool:
		return models.JSONBool(t), nil
	case nil:
		return models.Null, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// canonicalNumber rewrites a number literal the way it would be printed after
// a float64 round trip, so 1.0, 1e2 and 1.50 become 1, 100 and 1.5.
func canonicalNumber(n json.Number) (models.JSONValue, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !math.IsInf(f, 0) {
		return nil, err
	}
	return models.NumberFromFloat(f), nil
}

func decodeObject(decoder *json.Decoder) (models.JSONValue, error) {
	obj := models.NewObject()
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not a string", keyTok)
		}
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	// Consume the closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(decoder *json.Decoder) (models.JSONValue, error) {
	arr := make(models.JSONArray, 0)
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// Consume the closing ']'
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ReadFile reads an input file of any format, rejecting missing and empty files.
func ReadFile(filePath string) ([]byte, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to read file '%s'", filePath), err)
	}
	return data, nil
}

// IsBlank reports whether text holds nothing but whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
