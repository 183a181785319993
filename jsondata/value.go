// Package jsondata provides a dynamically typed JSON value together with a
// streaming parser and a compact serializer.
//
// A Value holds exactly one of the seven JSON kinds: Null, Bool, Int, Float,
// String, Array or Object.  Scalar kinds are stored inline and copied by
// value.  Array and Object payloads live in shared storage: copying a Value
// copies a reference, not the payload, so mutation through one copy is
// visible through every copy.  The shared storage is not synchronized;
// concurrent mutation requires external locking.
//
// You can create Values three ways:
//
// 1. Declare a variable of type Value, which represents the JSON null value.
//
//	var v jsondata.Value
//
// 2. Parse encoded JSON text with Deserialize or DeserializeFrom.
//
//	v, err := jsondata.Deserialize(`{"a":[1,2]}`)
//
// 3. Wrap a Go value of any valid JSON type with New, or use the typed
// constructors NewBool, NewInt, NewFloat, NewString, NewArray and NewObject.
//
//	v, err := jsondata.New(map[string]any{"a": 1})
//
// To convert a Value back to JSON text, use Serialize, SerializeTo or
// json.Marshal.
package jsondata

import (
	"fmt"
	"reflect"
)

// Kind identifies the active variant of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// elements is the shared storage behind an Array-kinded Value.  All copies
// of such a Value point at the same elements, so appends and element
// replacements through one copy are observed by the rest.
type elements struct {
	list []Value
}

// Value is a dynamically typed JSON value.  The zero Value is JSON null.
//
// Values are intended for single-threaded use; see the package comment for
// the sharing semantics of Array and Object payloads.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  *elements
	obj  map[string]Value
}

// NewBool returns a Bool-kinded Value.
func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// NewInt returns an Int-kinded Value.
func NewInt(i int64) Value {
	return Value{kind: Int, i: i}
}

// NewFloat returns a Float-kinded Value.
func NewFloat(f float64) Value {
	return Value{kind: Float, f: f}
}

// NewString returns a String-kinded Value.
func NewString(s string) Value {
	return Value{kind: String, s: s}
}

// NewArray returns an Array-kinded Value holding the given elements in
// fresh shared storage.
func NewArray(elems ...Value) Value {
	return Value{kind: Array, arr: &elements{list: elems}}
}

// NewObject returns an Object-kinded Value backed by the given map, which
// the Value takes ownership of.  A nil map is replaced by an empty one.
func NewObject(members map[string]Value) Value {
	if members == nil {
		members = make(map[string]Value)
	}
	return Value{kind: Object, obj: members}
}

// New returns a Value wrapping the given Go value.  Supported inputs are
// nil, booleans, all integer widths (normalized to int64), float32 and
// float64, strings, []Value, map[string]Value, and slices or string-keyed
// maps of any of these, converted recursively.  A Value passes through
// unchanged.  Returns an error for any other input.
func New(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return val, nil
	case bool:
		return NewBool(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int8:
		return NewInt(int64(val)), nil
	case int16:
		return NewInt(int64(val)), nil
	case int32:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case uint:
		return NewInt(int64(val)), nil
	case uint8:
		return NewInt(int64(val)), nil
	case uint16:
		return NewInt(int64(val)), nil
	case uint32:
		return NewInt(int64(val)), nil
	case uint64:
		return NewInt(int64(val)), nil
	case float32:
		return NewFloat(float64(val)), nil
	case float64:
		return NewFloat(val), nil
	case string:
		return NewString(val), nil
	}

	// Collection types and named basic types are handled reflectively, so
	// that inputs like []string or map[string]int convert as expected.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return NewBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewInt(int64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(rv.Float()), nil
	case reflect.String:
		return NewString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := New(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return NewArray(elems...), nil
	case reflect.Map:
		members := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key()
			if key.Kind() != reflect.String {
				return Value{}, fmt.Errorf("jsondata: invalid object key: %v", key)
			}
			mv, err := New(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}
			members[key.String()] = mv
		}
		return NewObject(members), nil
	default:
		return Value{}, fmt.Errorf("jsondata: invalid JSON value: %v", v)
	}
}

// Kind returns the active variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the JSON null value.
func (v Value) IsNull() bool { return v.kind == Null }

// IsBool reports whether v holds a boolean.
func (v Value) IsBool() bool { return v.kind == Bool }

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return v.kind == Int }

// IsFloat reports whether v holds a float.
func (v Value) IsFloat() bool { return v.kind == Float }

// IsString reports whether v holds a string.
func (v Value) IsString() bool { return v.kind == String }

// IsArray reports whether v holds an array.
func (v Value) IsArray() bool { return v.kind == Array }

// IsObject reports whether v holds an object.
func (v Value) IsObject() bool { return v.kind == Object }

// Bool returns the boolean payload.  Returns a TypeMismatchError if v is
// not Bool-kinded.
func (v Value) Bool() (bool, error) {
	if v.kind != Bool {
		return false, &TypeMismatchError{Want: Bool, Got: v.kind}
	}
	return v.b, nil
}

// Int returns the integer payload.  Returns a TypeMismatchError if v is
// not Int-kinded; a Float is never silently truncated.
func (v Value) Int() (int64, error) {
	if v.kind != Int {
		return 0, &TypeMismatchError{Want: Int, Got: v.kind}
	}
	return v.i, nil
}

// Float returns the float payload.  Returns a TypeMismatchError if v is
// not Float-kinded; an Int is never silently widened.
func (v Value) Float() (float64, error) {
	if v.kind != Float {
		return 0, &TypeMismatchError{Want: Float, Got: v.kind}
	}
	return v.f, nil
}

// Text returns the string payload.  Returns a TypeMismatchError if v is
// not String-kinded.
func (v Value) Text() (string, error) {
	if v.kind != String {
		return "", &TypeMismatchError{Want: String, Got: v.kind}
	}
	return v.s, nil
}

// Elems returns the array payload.  The returned slice is the shared
// storage itself, not a copy; callers must treat it as read-only and use
// Append or SetAt to mutate.  Returns a TypeMismatchError if v is not
// Array-kinded.
func (v Value) Elems() ([]Value, error) {
	if v.kind != Array {
		return nil, &TypeMismatchError{Want: Array, Got: v.kind}
	}
	return v.arr.list, nil
}

// Members returns the object payload.  The returned map is the shared
// storage itself, not a copy; callers must treat it as read-only and use
// Set to mutate.  Returns a TypeMismatchError if v is not Object-kinded.
func (v Value) Members() (map[string]Value, error) {
	if v.kind != Object {
		return nil, &TypeMismatchError{Want: Object, Got: v.kind}
	}
	return v.obj, nil
}

// At returns the array element at position i.  Returns a TypeMismatchError
// if v is not Array-kinded and an IndexOutOfRangeError if i is out of
// range.  At never creates elements.
func (v Value) At(i int) (Value, error) {
	if v.kind != Array {
		return Value{}, &TypeMismatchError{Want: Array, Got: v.kind}
	}
	if i < 0 || i >= len(v.arr.list) {
		return Value{}, &IndexOutOfRangeError{Index: i, Len: len(v.arr.list)}
	}
	return v.arr.list[i], nil
}

// Get returns the object member stored under key.  Returns a
// TypeMismatchError if v is not Object-kinded and a KeyNotFoundError if the
// key is absent.  Get never creates entries; use Set to insert.
func (v Value) Get(key string) (Value, error) {
	if v.kind != Object {
		return Value{}, &TypeMismatchError{Want: Object, Got: v.kind}
	}
	member, ok := v.obj[key]
	if !ok {
		return Value{}, &KeyNotFoundError{Key: key}
	}
	return member, nil
}

// HasIndex reports whether v is an array with an element at position i.
// It returns false, rather than an error, on any kind mismatch.
func (v Value) HasIndex(i int) bool {
	return v.kind == Array && i >= 0 && i < len(v.arr.list)
}

// HasKey reports whether v is an object with a member under key.  It
// returns false, rather than an error, on any kind mismatch.
func (v Value) HasKey(key string) bool {
	if v.kind != Object {
		return false
	}
	_, ok := v.obj[key]
	return ok
}

// Len returns the number of elements of an array or members of an object,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr.list)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// Append appends the given values to the array held by v.  A Null-kinded v
// is first promoted to an empty array; this promotion and the one in Set
// are the only implicit state transitions in the API.  Returns a
// TypeMismatchError if v holds any other kind.
//
// The new elements are visible through every copy of an already
// Array-kinded v.  Promotion affects v alone: Null payloads are not shared.
func (v *Value) Append(vals ...Value) error {
	switch v.kind {
	case Array:
	case Null:
		v.kind = Array
		v.arr = &elements{}
	default:
		return &TypeMismatchError{Want: Array, Got: v.kind}
	}
	v.arr.list = append(v.arr.list, vals...)
	return nil
}

// Set stores val under key in the object held by v, overwriting any
// previous member.  A Null-kinded v is first promoted to an empty object.
// Returns a TypeMismatchError if v holds any other kind.
func (v *Value) Set(key string, val Value) error {
	switch v.kind {
	case Object:
	case Null:
		v.kind = Object
		v.obj = make(map[string]Value)
	default:
		return &TypeMismatchError{Want: Object, Got: v.kind}
	}
	v.obj[key] = val
	return nil
}

// SetAt replaces the array element at position i.  Unlike Append, SetAt
// never grows the array: an out-of-range position is an
// IndexOutOfRangeError.  Returns a TypeMismatchError if v is not
// Array-kinded.
func (v *Value) SetAt(i int, val Value) error {
	if v.kind != Array {
		return &TypeMismatchError{Want: Array, Got: v.kind}
	}
	if i < 0 || i >= len(v.arr.list) {
		return &IndexOutOfRangeError{Index: i, Len: len(v.arr.list)}
	}
	v.arr.list[i] = val
	return nil
}

// Equal reports whether other is structurally equal to v: same kind, equal
// scalar payloads, elementwise-equal arrays, and objects with the same key
// set and equal members.  Object iteration order never matters.  Int and
// Float are distinct kinds and never compare equal to each other.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == other.b
	case Int:
		return v.i == other.i
	case Float:
		return v.f == other.f
	case String:
		return v.s == other.s
	case Array:
		if len(v.arr.list) != len(other.arr.list) {
			return false
		}
		for i, elem := range v.arr.list {
			if !elem.Equal(other.arr.list[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for key, member := range v.obj {
			om, ok := other.obj[key]
			if !ok || !member.Equal(om) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
