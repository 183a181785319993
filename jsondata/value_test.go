package jsondata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	require.Equal(t, Null, v.Kind())
	require.True(t, v.IsNull())
	require.Equal(t, 0, v.Len())
}

func TestTypedConstructors(t *testing.T) {
	b := NewBool(true)
	require.True(t, b.IsBool())
	got, err := b.Bool()
	require.NoError(t, err)
	require.True(t, got)

	i := NewInt(-42)
	require.True(t, i.IsInt())
	gi, err := i.Int()
	require.NoError(t, err)
	require.Equal(t, int64(-42), gi)

	f := NewFloat(0.5)
	require.True(t, f.IsFloat())
	gf, err := f.Float()
	require.NoError(t, err)
	require.Equal(t, 0.5, gf)

	s := NewString("hello")
	require.True(t, s.IsString())
	gs, err := s.Text()
	require.NoError(t, err)
	require.Equal(t, "hello", gs)

	a := NewArray(NewInt(1), NewInt(2))
	require.True(t, a.IsArray())
	require.Equal(t, 2, a.Len())

	o := NewObject(map[string]Value{"one": NewInt(1)})
	require.True(t, o.IsObject())
	require.Equal(t, 1, o.Len())
}

func TestNewConversions(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Value{}},
		{"bool", true, NewBool(true)},
		{"int", 7, NewInt(7)},
		{"int8", int8(-3), NewInt(-3)},
		{"uint16", uint16(9), NewInt(9)},
		{"int64", int64(1 << 40), NewInt(1 << 40)},
		{"float32", float32(0.25), NewFloat(0.25)},
		{"float64", 1.5, NewFloat(1.5)},
		{"string", "x", NewString("x")},
		{"value passthrough", NewInt(5), NewInt(5)},
		{"any slice", []any{1, "a"}, NewArray(NewInt(1), NewString("a"))},
		{"typed slice", []string{"a", "b"}, NewArray(NewString("a"), NewString("b"))},
		{
			"any map",
			map[string]any{"a": 1, "b": []any{true}},
			NewObject(map[string]Value{
				"a": NewInt(1),
				"b": NewArray(NewBool(true)),
			}),
		},
		{"typed map", map[string]int{"n": 3}, NewObject(map[string]Value{"n": NewInt(3)})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.in)
			require.NoError(t, err)
			require.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(struct{}{})
	require.Error(t, err)

	_, err = New(map[int]string{1: "a"})
	require.Error(t, err)

	_, err = New([]any{make(chan int)})
	require.Error(t, err)
}

func TestGetterTypeMismatch(t *testing.T) {
	v := NewInt(1)

	_, err := v.Bool()
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, Bool, mismatch.Want)
	require.Equal(t, Int, mismatch.Got)

	_, err = v.Float()
	require.ErrorAs(t, err, &mismatch)

	_, err = v.Text()
	require.ErrorAs(t, err, &mismatch)

	_, err = v.Elems()
	require.ErrorAs(t, err, &mismatch)

	_, err = v.Members()
	require.ErrorAs(t, err, &mismatch)

	// An Int is not implicitly widened to Float.
	f := NewFloat(1)
	_, err = f.Int()
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, Int, mismatch.Want)
	require.Equal(t, Float, mismatch.Got)
}

func TestAt(t *testing.T) {
	arr := NewArray(NewInt(10), NewInt(20))

	elem, err := arr.At(1)
	require.NoError(t, err)
	got, err := elem.Int()
	require.NoError(t, err)
	require.Equal(t, int64(20), got)

	_, err = arr.At(5)
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, 5, oor.Index)
	require.Equal(t, 2, oor.Len)

	_, err = arr.At(-1)
	require.ErrorAs(t, err, &oor)

	_, err = NewInt(1).At(0)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestGet(t *testing.T) {
	obj := NewObject(map[string]Value{"a": NewInt(1)})

	member, err := obj.Get("a")
	require.NoError(t, err)
	got, err := member.Int()
	require.NoError(t, err)
	require.Equal(t, int64(1), got)

	_, err = obj.Get("z")
	var notFound *KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "z", notFound.Key)

	_, err = NewArray().Get("a")
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestHasNeverErrors(t *testing.T) {
	arr := NewArray(NewInt(1))
	require.True(t, arr.HasIndex(0))
	require.False(t, arr.HasIndex(1))
	require.False(t, arr.HasIndex(-1))
	require.False(t, arr.HasKey("a"))

	obj := NewObject(map[string]Value{"a": Value{}})
	require.True(t, obj.HasKey("a"))
	require.False(t, obj.HasKey("b"))
	require.False(t, obj.HasIndex(0))

	var null Value
	require.False(t, null.HasIndex(0))
	require.False(t, null.HasKey("a"))
}

func TestAppendPromotesNull(t *testing.T) {
	var v Value
	require.NoError(t, v.Append(NewString("2")))
	require.True(t, v.IsArray())
	require.Equal(t, 1, v.Len())
	require.Equal(t, `["2"]`, Serialize(v))

	require.NoError(t, v.Append(NewInt(3), NewInt(4)))
	require.Equal(t, 3, v.Len())

	scalar := NewInt(1)
	err := scalar.Append(NewInt(2))
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, Array, mismatch.Want)
}

func TestSetPromotesNull(t *testing.T) {
	var v Value
	require.NoError(t, v.Set("a", NewInt(1)))
	require.True(t, v.IsObject())

	// Last write wins.
	require.NoError(t, v.Set("a", NewInt(2)))
	member, err := v.Get("a")
	require.NoError(t, err)
	got, err := member.Int()
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	str := NewString("x")
	err = str.Set("a", NewInt(1))
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, Object, mismatch.Want)
}

func TestSetAt(t *testing.T) {
	arr := NewArray(NewInt(1), NewInt(2))
	require.NoError(t, arr.SetAt(0, NewString("x")))
	elem, err := arr.At(0)
	require.NoError(t, err)
	require.True(t, elem.IsString())

	err = arr.SetAt(2, NewInt(3))
	var oor *IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)

	var null Value
	err = null.SetAt(0, NewInt(1))
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestArrayCopiesAlias(t *testing.T) {
	a := NewArray(NewInt(1))
	b := a

	require.NoError(t, b.Append(NewInt(2)))
	require.Equal(t, 2, a.Len())
	elem, err := a.At(1)
	require.NoError(t, err)
	got, err := elem.Int()
	require.NoError(t, err)
	require.Equal(t, int64(2), got)

	require.NoError(t, a.SetAt(0, NewInt(9)))
	elem, err = b.At(0)
	require.NoError(t, err)
	got, err = elem.Int()
	require.NoError(t, err)
	require.Equal(t, int64(9), got)
}

func TestObjectCopiesAlias(t *testing.T) {
	a := NewObject(nil)
	b := a

	require.NoError(t, b.Set("x", NewInt(1)))
	require.True(t, a.HasKey("x"))

	require.NoError(t, a.Set("x", NewInt(2)))
	member, err := b.Get("x")
	require.NoError(t, err)
	got, err := member.Int()
	require.NoError(t, err)
	require.Equal(t, int64(2), got)
}

func TestNullPromotionIsNotShared(t *testing.T) {
	var a Value
	b := a

	require.NoError(t, b.Append(NewInt(1)))
	require.True(t, b.IsArray())
	require.True(t, a.IsNull())
}

func TestNestedSharing(t *testing.T) {
	inner := NewArray(NewInt(1))
	outer := NewObject(map[string]Value{"inner": inner})

	// The object member shares storage with the original array.
	require.NoError(t, inner.Append(NewInt(2)))
	member, err := outer.Get("inner")
	require.NoError(t, err)
	require.Equal(t, 2, member.Len())
}

func TestEqual(t *testing.T) {
	left, err := New(map[string]any{
		"a": []any{1, 2.5, "x", nil, true},
		"b": map[string]any{"c": 3},
	})
	require.NoError(t, err)
	right, err := New(map[string]any{
		"b": map[string]any{"c": 3},
		"a": []any{1, 2.5, "x", nil, true},
	})
	require.NoError(t, err)

	require.True(t, left.Equal(right))
	require.True(t, right.Equal(left))

	require.NoError(t, right.Set("d", Value{}))
	require.False(t, left.Equal(right))

	// Int and Float are distinct kinds.
	require.False(t, NewInt(1).Equal(NewFloat(1)))
	require.False(t, NewArray().Equal(NewObject(nil)))
	require.True(t, Value{}.Equal(Value{}))
}

func TestErrorMessages(t *testing.T) {
	_, err := NewInt(1).Bool()
	require.EqualError(t, err, "jsondata: value is int, not bool")

	_, err = NewArray().At(3)
	require.EqualError(t, err, "jsondata: array index 3 out of range [0:0]")

	_, err = NewObject(nil).Get("z")
	require.EqualError(t, err, `jsondata: object key "z" not found`)

	var mismatch *TypeMismatchError
	require.False(t, errors.As(err, &mismatch))
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		Null:   "null",
		Bool:   "bool",
		Int:    "int",
		Float:  "float",
		String: "string",
		Array:  "array",
		Object: "object",
	}
	for kind, want := range names {
		require.Equal(t, want, kind.String())
	}
	require.Equal(t, "Kind(99)", Kind(99).String())
}
