package models

import (
	"iter"
	"slices"
)

// Kind tags the variant held by a JSONValue.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// JSONValue is a parsed value: one of JSONNull, JSONBool, JSONNumber,
// JSONString, JSONArray or *JSONObject. The set is closed.
type JSONValue interface {
	Kind() Kind
	Accept(v Visitor)
}

// Visitor is called back with the concrete variant of a JSONValue.
type Visitor interface {
	VisitNull()
	VisitBool(b JSONBool)
	VisitNumber(n JSONNumber)
	VisitString(s JSONString)
	VisitArray(a JSONArray)
	VisitObject(o *JSONObject)
}

// JSONNull is the JSON null literal.
type JSONNull struct{}

// Null is the only JSONNull value.
var Null = JSONNull{}

// JSONBool is a JSON boolean.
type JSONBool bool

// JSONNumber holds the canonical text of a JSON number, e.g. "42" or "1.5e-7".
type JSONNumber string

// JSONString is a JSON string.
type JSONString string

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

func (JSONNull) Kind() Kind   { return KindNull }
func (JSONBool) Kind() Kind   { return KindBool }
func (JSONNumber) Kind() Kind { return KindNumber }
func (JSONString) Kind() Kind { return KindString }
func (JSONArray) Kind() Kind  { return KindArray }

func (n JSONNull) Accept(v Visitor)   { v.VisitNull() }
func (b JSONBool) Accept(v Visitor)   { v.VisitBool(b) }
func (n JSONNumber) Accept(v Visitor) { v.VisitNumber(n) }
func (s JSONString) Accept(v Visitor) { v.VisitString(s) }
func (a JSONArray) Accept(v Visitor)  { v.VisitArray(a) }

// JSONObject represents a JSON object whose keys keep their insertion order.
// The zero value is an empty object ready to use.
type JSONObject struct {
	keys   []string
	values map[string]JSONValue
}

// NewObject returns an empty JSONObject.
func NewObject() *JSONObject {
	return &JSONObject{values: make(map[string]JSONValue)}
}

func (o *JSONObject) Kind() Kind       { return KindObject }
func (o *JSONObject) Accept(v Visitor) { v.VisitObject(o) }

// Set stores value under key. A key that already exists keeps its position.
func (o *JSONObject) Set(key string, value JSONValue) {
	if o.values == nil {
		o.values = make(map[string]JSONValue)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *JSONObject) Get(key string) (JSONValue, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (o *JSONObject) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Len returns the number of keys.
func (o *JSONObject) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// All iterates over the entries in insertion order.
func (o *JSONObject) All() iter.Seq2[string, JSONValue] {
	return func(yield func(string, JSONValue) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// IsContainer reports whether v is an array or an object.
func IsContainer(v JSONValue) bool {
	k := v.Kind()
	return k == KindArray || k == KindObject
}

// IntermediateRepresentation holds a parsed JSON document.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}

// KeyStyle selects how CSV header names are rewritten into object keys.
type KeyStyle string

const (
	KeyStyleNone       KeyStyle = "none"
	KeyStyleSnake      KeyStyle = "snake"
	KeyStyleCamel      KeyStyle = "camel"
	KeyStyleLowerCamel KeyStyle = "lower_camel"
	KeyStyleKebab      KeyStyle = "kebab"
)

// KeyStyles lists every accepted KeyStyle.
var KeyStyles = []KeyStyle{KeyStyleNone, KeyStyleSnake, KeyStyleCamel, KeyStyleLowerCamel, KeyStyleKebab}

// Valid reports whether s is a known style. The empty style means none.
func (s KeyStyle) Valid() bool {
	return s == "" || slices.Contains(KeyStyles, s)
}

// DefaultIndent is the indentation used when none is requested.
const DefaultIndent = 2

// ValidIndent reports whether n is a supported indentation width (2 or 4).
func ValidIndent(n int) bool {
	return n == 2 || n == 4
}
