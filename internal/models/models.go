package models

import "github.com/go-json-experiment/json/jsontext"

// Value is a single, syntactically valid structured value as produced by the
// decoder. It can be a string, number, boolean, null, object, or array.
type Value = jsontext.Value

// FlatMap is a single-level mapping from key to string value.
// Insertion order is not significant.
type FlatMap map[string]string

// StringList is an ordered sequence of strings, used for split results and
// as the input of list packing.
type StringList []string

// ValueKind classifies a Value for coercion to string.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindString
	KindInteger
	KindDecimal
)

// String returns the lowercase name of the kind
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "int"
	case KindDecimal:
		return "float64"
	default:
		return "unknown"
	}
}

// Keys returns the keys of m in no particular order.
func (m FlatMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
