package jsondata

import "fmt"

// TypeMismatchError is returned when a typed accessor or an indexed access
// is invoked against a Value whose active kind does not match.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("jsondata: value is %s, not %s", e.Got, e.Want)
}

// IndexOutOfRangeError is returned when an array position is accessed
// beyond the array's current length.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("jsondata: array index %d out of range [0:%d]", e.Index, e.Len)
}

// KeyNotFoundError is returned by read-only object access for an absent key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("jsondata: object key %q not found", e.Key)
}

// UnexpectedTokenError is returned when the parser encounters a byte that
// cannot start or continue the current construct.  Ch is 0 when the input
// ended prematurely.
type UnexpectedTokenError struct {
	Ch byte
}

func (e *UnexpectedTokenError) Error() string {
	if e.Ch == 0 {
		return "jsondata: unexpected end of input"
	}
	return fmt.Sprintf("jsondata: unexpected token %q", e.Ch)
}

// UnexpectedEscapeError is returned when a string literal contains a
// backslash followed by a byte that does not begin a known escape sequence.
type UnexpectedEscapeError struct {
	Ch byte
}

func (e *UnexpectedEscapeError) Error() string {
	return fmt.Sprintf("jsondata: unexpected escape \"\\%c\"", e.Ch)
}
