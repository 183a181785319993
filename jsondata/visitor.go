package jsondata

import "fmt"

// A Visitor is used by Accept to process a Value without switching on its
// kind at every call site.  The Array and Object methods may recursively
// call Accept on their constituent Values.
type Visitor[T any] interface {
	Null() (T, error)
	Bool(bool) (T, error)
	Int(int64) (T, error)
	Float(float64) (T, error)
	String(string) (T, error)
	Array([]Value) (T, error)
	Object(map[string]Value) (T, error)
}

// Accept applies the given visitor to the given value by calling the
// visitor method matching the value's kind.  The Array and Object methods
// receive fresh slice and map headers, so a visitor cannot restructure the
// original containers; the element Values themselves still share payloads
// in the usual way.
//
// Note that this is a function so that the visitor and return value can be
// a generic type.  Go does not allow methods to have generic types
// unrelated to the receiver type.
func Accept[T any](value Value, visitor Visitor[T]) (T, error) {
	switch value.kind {
	case Null:
		return visitor.Null()
	case Bool:
		return visitor.Bool(value.b)
	case Int:
		return visitor.Int(value.i)
	case Float:
		return visitor.Float(value.f)
	case String:
		return visitor.String(value.s)
	case Array:
		elems := make([]Value, len(value.arr.list))
		copy(elems, value.arr.list)
		return visitor.Array(elems)
	case Object:
		members := make(map[string]Value, len(value.obj))
		for k, m := range value.obj {
			members[k] = m
		}
		return visitor.Object(members)
	default:
		var zero T
		return zero, fmt.Errorf("jsondata: invalid JSON value kind: %d", value.kind)
	}
}
