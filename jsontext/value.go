package jsontext

import "fmt"

// Value is the parsed representation of a JSON document. It is a
// closed sum: the only implementations are Scalar, Array and Object.
type Value interface {
	isValue()
}

// Scalar holds a string, float64, bool, or nil for the null literal.
type Scalar struct {
	Val any
}

// Array holds the elements of a JSON array in document order.
type Array struct {
	Items []Value
}

// Member is one key/value pair of an object.
type Member struct {
	Name  string
	Value Value
}

// Object holds the members of a JSON object in document order.
// Duplicate names are preserved here; Decode keeps the last one.
type Object struct {
	Members []Member
}

func (Scalar) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Decode converts a Value into the native Go shape produced by
// encoding/json: map[string]any, []any, string, float64, bool, nil.
func Decode(v Value) any {
	switch v := v.(type) {
	case Scalar:
		return v.Val
	case Array:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = Decode(item)
		}
		return items
	case Object:
		m := make(map[string]any, len(v.Members))
		for _, member := range v.Members {
			m[member.Name] = Decode(member.Value)
		}
		return m
	default:
		// Value is sealed; no further variant can exist.
		panic(fmt.Sprintf("jsontext: impossible value type %T", v))
	}
}
