package jsondata

import (
	"io"
	"strconv"
)

// Serialize renders v as minimal single-line JSON text.  No whitespace is
// ever emitted; object member order is unspecified.
func Serialize(v Value) string {
	return string(AppendSerialize(nil, v))
}

// AppendSerialize appends the JSON encoding of v to dst and returns the
// extended buffer.
func AppendSerialize(dst []byte, v Value) []byte {
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case Bool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Int:
		return strconv.AppendInt(dst, v.i, 10)
	case Float:
		return strconv.AppendFloat(dst, v.f, 'g', -1, 64)
	case String:
		return appendQuoted(dst, v.s)
	case Array:
		dst = append(dst, '[')
		for i, elem := range v.arr.list {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendSerialize(dst, elem)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		first := true
		for key, member := range v.obj {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = appendQuoted(dst, key)
			dst = append(dst, ':')
			dst = AppendSerialize(dst, member)
		}
		return append(dst, '}')
	default:
		return dst
	}
}

// appendQuoted appends s as a double-quoted JSON string.  The two-character
// escapes cover the quote, backslash, forward slash and the control bytes
// \b \f \n \r \t; every other byte is copied verbatim.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '/':
			dst = append(dst, '\\', '/')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, ch)
		}
	}
	return append(dst, '"')
}

// SerializeTo writes the JSON encoding of v to w.
func SerializeTo(w io.Writer, v Value) error {
	_, err := w.Write(AppendSerialize(nil, v))
	return err
}

// String returns the JSON encoding of v.  It is equivalent to Serialize(v)
// and exists so Values print usefully with the fmt package.
func (v Value) String() string {
	return Serialize(v)
}

// MarshalJSON returns the JSON encoding of v.  Generally used indirectly,
// by embedding a Value in a struct passed to json.Marshal.
func (v Value) MarshalJSON() ([]byte, error) {
	return AppendSerialize(nil, v), nil
}
