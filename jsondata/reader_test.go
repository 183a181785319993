package jsondata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(r reader) string {
	var out []byte
	for {
		ch := r.next()
		if ch == 0 {
			return string(out)
		}
		out = append(out, ch)
	}
}

func TestStringReader(t *testing.T) {
	r := &stringReader{s: "abc"}
	require.Equal(t, byte('a'), r.next())
	require.Equal(t, byte('b'), r.next())
	require.Equal(t, byte('c'), r.next())

	// The sentinel repeats indefinitely past the end.
	require.Equal(t, byte(0), r.next())
	require.Equal(t, byte(0), r.next())
}

func TestStringReaderEmpty(t *testing.T) {
	r := &stringReader{}
	require.Equal(t, byte(0), r.next())
}

func TestStreamReaderSpansChunks(t *testing.T) {
	// Longer than one 256-byte buffer, so at least one refill happens.
	input := strings.Repeat("0123456789", 100)
	r := &streamReader{r: strings.NewReader(input)}
	require.Equal(t, input, drain(r))
	require.NoError(t, r.failure())

	require.Equal(t, byte(0), r.next())
}

func TestStreamReaderShortReads(t *testing.T) {
	input := "hello, chunked world"
	r := &streamReader{r: &shortReader{r: strings.NewReader(input)}}
	require.Equal(t, input, drain(r))
	require.NoError(t, r.failure())
}

func TestStreamReaderFailure(t *testing.T) {
	r := &streamReader{r: &failingReader{data: "ab"}}
	require.Equal(t, byte('a'), r.next())
	require.Equal(t, byte('b'), r.next())
	require.Equal(t, byte(0), r.next())
	require.ErrorIs(t, r.failure(), errBroken)

	// Still the sentinel, and still the same failure, on later calls.
	require.Equal(t, byte(0), r.next())
	require.ErrorIs(t, r.failure(), errBroken)
}
