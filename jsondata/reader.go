package jsondata

import "io"

// A reader is the parser's character source: next consumes and returns one
// byte of input, or 0 once the input is exhausted.  Advancing is O(1) and
// there is no way to rewind; the parser is a single forward pass and never
// needs one.  Byte 0 doubles as the end-of-input sentinel, so input
// containing a raw NUL terminates at that point.
type reader interface {
	next() byte
}

// stringReader reads from an in-memory string.
type stringReader struct {
	s   string
	pos int
}

func (r *stringReader) next() byte {
	if r.pos >= len(r.s) {
		return 0
	}
	ch := r.s[r.pos]
	r.pos++
	return ch
}

// streamReaderBufSize is the chunk size streamReader refills with.
const streamReaderBufSize = 256

// streamReader reads from an io.Reader in fixed-size chunks.  Once the
// stream is exhausted or fails, next returns 0 indefinitely; a non-EOF
// failure is kept in err for the deserialize entry points to surface.
type streamReader struct {
	r   io.Reader
	buf [streamReaderBufSize]byte
	pos int
	n   int
	err error
}

func (r *streamReader) next() byte {
	if r.pos < r.n {
		ch := r.buf[r.pos]
		r.pos++
		return ch
	}
	if r.err != nil {
		return 0
	}
	for {
		n, err := r.r.Read(r.buf[:])
		if n > 0 {
			r.n = n
			r.pos = 1
			return r.buf[0]
		}
		if err != nil {
			r.err = err
			return 0
		}
	}
}

// failure returns the stream error that ended the input, if any.  io.EOF is
// the normal end of a stream, not a failure.
func (r *streamReader) failure() error {
	if r.err == io.EOF {
		return nil
	}
	return r.err
}
