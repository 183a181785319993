package jsondata

import (
	"fmt"
	"io"
	"math"
)

// Deserialize parses the given JSON text into a Value.  On failure the
// returned Value is the zero Value and the error is one of the typed
// errors in this package.
func Deserialize(s string) (Value, error) {
	return runParser(&stringReader{s: s})
}

// DeserializeFrom parses JSON text read from r into a Value.  The stream
// is consumed in 256-byte chunks through the end of the top-level value.
// A read failure other than io.EOF is returned wrapped.
func DeserializeFrom(r io.Reader) (Value, error) {
	src := &streamReader{r: r}
	v, err := runParser(src)
	if ferr := src.failure(); ferr != nil {
		return Value{}, fmt.Errorf("jsondata: read: %w", ferr)
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// UnmarshalJSON replaces v with the result of parsing data.  Generally
// used indirectly, by unmarshaling into a struct field of type Value with
// json.Unmarshal.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Deserialize(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// runParser parses exactly one value from src and rejects any trailing
// non-whitespace.
func runParser(src reader) (Value, error) {
	p := &parser{src: src}
	p.skip()
	v, err := p.parse()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.ch != 0 {
		return Value{}, &UnexpectedTokenError{Ch: p.ch}
	}
	return v, nil
}

// parser is a recursive-descent JSON decoder holding one byte of lookahead.
// Every sub-parser consumes exactly the bytes belonging to its construct
// and leaves ch positioned one byte past it.  No sub-parser backtracks, and
// every loop advances the lookahead, so parsing terminates on any finite
// input.
type parser struct {
	src reader
	ch  byte
}

// skip advances the lookahead by one byte.
func (p *parser) skip() {
	p.ch = p.src.next()
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\v', '\f', '\n':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// skipSpace advances past any run of ASCII whitespace.
func (p *parser) skipSpace() {
	for isSpace(p.ch) {
		p.skip()
	}
}

// parse decodes one value, dispatching on the lookahead byte.
func (p *parser) parse() (Value, error) {
	p.skipSpace()
	switch {
	case p.ch == 'n':
		return Value{}, p.parseLiteral("null")
	case p.ch == 't':
		return NewBool(true), p.parseLiteral("true")
	case p.ch == 'f':
		return NewBool(false), p.parseLiteral("false")
	case p.ch == '-' || isDigit(p.ch):
		return p.parseNumber()
	case p.ch == '"':
		s, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil
	case p.ch == '[':
		return p.parseArray()
	case p.ch == '{':
		return p.parseObject()
	default:
		return Value{}, &UnexpectedTokenError{Ch: p.ch}
	}
}

// parseLiteral matches the remainder of lit, whose first byte is the
// current lookahead.
func (p *parser) parseLiteral(lit string) error {
	for i := 1; i < len(lit); i++ {
		p.skip()
		if p.ch != lit[i] {
			return &UnexpectedTokenError{Ch: p.ch}
		}
	}
	p.skip()
	return nil
}

// parseNumber decodes an integer or float literal.  The integer part is
// accumulated in an int64 with no overflow checking; a '.' or exponent
// marker switches the literal to float form.  The leading sign is applied
// once, to whichever representation wins.
func (p *parser) parseNumber() (Value, error) {
	positive := true
	if p.ch == '-' {
		p.skip()
		positive = false
		if !isDigit(p.ch) {
			return Value{}, &UnexpectedTokenError{Ch: p.ch}
		}
	}
	var ival int64
	for {
		ival = ival*10 + int64(p.ch-'0')
		p.skip()
		if !isDigit(p.ch) {
			break
		}
	}
	switch {
	case p.ch == '.':
		fval := float64(ival)
		if err := p.parseFraction(&fval); err != nil {
			return Value{}, err
		}
		if !positive {
			fval = -fval
		}
		return NewFloat(fval), nil
	case p.ch == 'e' || p.ch == 'E':
		fval := float64(ival)
		if err := p.parseExponent(&fval); err != nil {
			return Value{}, err
		}
		if !positive {
			fval = -fval
		}
		return NewFloat(fval), nil
	default:
		if !positive {
			ival = -ival
		}
		return NewInt(ival), nil
	}
}

// parseFraction accumulates the digits after the decimal point by
// successive negative powers of ten, then hands off to parseExponent if an
// exponent marker follows.  At least one fractional digit is required.
func (p *parser) parseFraction(fval *float64) error {
	p.skip()
	if !isDigit(p.ch) {
		return &UnexpectedTokenError{Ch: p.ch}
	}
	for e := -1.0; ; e-- {
		*fval += float64(p.ch-'0') * math.Pow(10, e)
		p.skip()
		if !isDigit(p.ch) {
			break
		}
	}
	if p.ch == 'e' || p.ch == 'E' {
		return p.parseExponent(fval)
	}
	return nil
}

// parseExponent scales the accumulated value by ten raised to the signed
// exponent.  At least one exponent digit is required.
func (p *parser) parseExponent(fval *float64) error {
	p.skip()
	positive := true
	if p.ch == '-' {
		positive = false
		p.skip()
	} else if p.ch == '+' {
		p.skip()
	}
	if !isDigit(p.ch) {
		return &UnexpectedTokenError{Ch: p.ch}
	}
	var exp int64
	for {
		exp = exp*10 + int64(p.ch-'0')
		p.skip()
		if !isDigit(p.ch) {
			break
		}
	}
	if !positive {
		exp = -exp
	}
	*fval *= math.Pow(10, float64(exp))
	return nil
}

// parseString decodes a string literal, with the lookahead on the opening
// quote.  Bytes are copied verbatim until the closing quote; backslash
// starts an escape sequence.
func (p *parser) parseString() (string, error) {
	p.skip()
	var buf []byte
	for {
		switch p.ch {
		case 0:
			return "", &UnexpectedTokenError{}
		case '"':
			p.skip()
			return string(buf), nil
		case '\\':
			p.skip()
			switch p.ch {
			case '/':
				buf = append(buf, '/')
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			case 'b':
				buf = append(buf, '\b')
			case 'f':
				buf = append(buf, '\f')
			case 'v':
				buf = append(buf, '\v')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			case 'u':
				code, err := p.parseHex4()
				if err != nil {
					return "", err
				}
				// Re-encoded in the three-byte UTF-8 form, assuming the
				// code point lies in 0x0800-0xFFFF.  No surrogate-pair
				// combining.
				buf = append(buf,
					byte(0xE0|code>>12),
					byte(0x80|code>>6&0x3F),
					byte(0x80|code&0x3F))
			default:
				return "", &UnexpectedEscapeError{Ch: p.ch}
			}
			p.skip()
		default:
			buf = append(buf, p.ch)
			p.skip()
		}
	}
}

// parseHex4 consumes exactly four hex digits following a \u escape.
func (p *parser) parseHex4() (uint32, error) {
	var code uint32
	for i := 0; i < 4; i++ {
		p.skip()
		code <<= 4
		switch {
		case p.ch >= '0' && p.ch <= '9':
			code += uint32(p.ch - '0')
		case p.ch >= 'a' && p.ch <= 'f':
			code += uint32(p.ch-'a') + 10
		case p.ch >= 'A' && p.ch <= 'F':
			code += uint32(p.ch-'A') + 10
		default:
			return 0, &UnexpectedTokenError{Ch: p.ch}
		}
	}
	return code, nil
}

// parseArray decodes an array, with the lookahead on the opening bracket.
// Elements are separated by commas; ']' finishes the array, possibly after
// zero elements.
func (p *parser) parseArray() (Value, error) {
	p.skip()
	out := NewArray()
	p.skipSpace()
	if p.ch == ']' {
		p.skip()
		return out, nil
	}
	for {
		elem, err := p.parse()
		if err != nil {
			return Value{}, err
		}
		out.arr.list = append(out.arr.list, elem)
		p.skipSpace()
		switch p.ch {
		case ']':
			p.skip()
			return out, nil
		case ',':
			p.skip()
		default:
			return Value{}, &UnexpectedTokenError{Ch: p.ch}
		}
	}
}

// parseObject decodes an object, with the lookahead on the opening brace.
// Each member is a quoted key, ':', and a value; '}' finishes the object,
// possibly after zero members.  Duplicate keys overwrite, last write wins.
func (p *parser) parseObject() (Value, error) {
	p.skip()
	out := NewObject(nil)
	p.skipSpace()
	if p.ch == '}' {
		p.skip()
		return out, nil
	}
	for {
		p.skipSpace()
		if p.ch != '"' {
			return Value{}, &UnexpectedTokenError{Ch: p.ch}
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if p.ch != ':' {
			return Value{}, &UnexpectedTokenError{Ch: p.ch}
		}
		p.skip()
		member, err := p.parse()
		if err != nil {
			return Value{}, err
		}
		out.obj[key] = member
		p.skipSpace()
		switch p.ch {
		case '}':
			p.skip()
			return out, nil
		case ',':
			p.skip()
		default:
			return Value{}, &UnexpectedTokenError{Ch: p.ch}
		}
	}
}
