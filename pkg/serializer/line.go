package serializer

import (
	"strconv"

	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// "<type>=" and CRLF
const lineBaseSize = 4

type fieldKind int

const (
	fieldBytes fieldKind = iota
	fieldString
	fieldUint
)

// field is a token of a line, preceded by sep when sep is not zero.
type field struct {
	sep  byte
	kind fieldKind
	b    []byte
	s    string
	u    uint64
}

func bytesField(sep byte, b []byte) field {
	return field{sep: sep, kind: fieldBytes, b: b}
}

func stringField(sep byte, s string) field {
	return field{sep: sep, kind: fieldString, s: s}
}

func uintField(sep byte, u uint64) field {
	return field{sep: sep, kind: fieldUint, u: u}
}

func lenUint(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

func (f field) marshalSize() int {
	n := 0
	if f.sep != 0 {
		n++
	}

	switch f.kind {
	case fieldBytes:
		n += len(f.b)
	case fieldString:
		n += len(f.s)
	default:
		n += lenUint(f.u)
	}

	return n
}

func (f field) marshalTo(b []byte) []byte {
	if f.sep != 0 {
		b = append(b, f.sep)
	}

	switch f.kind {
	case fieldBytes:
		return append(b, f.b...)
	case fieldString:
		return append(b, f.s...)
	default:
		return strconv.AppendUint(b, f.u, 10)
	}
}

// appendLine writes "<typ>=<fields>\r\n" after the cursor.
// The line is accepted only if at least one byte stays free after it.
// When an error is returned, the cursor is unchanged.
func (c *Context) appendLine(typ byte, fields ...field) error {
	size := lineBaseSize
	for _, f := range fields {
		size += f.marshalSize()
	}

	avail := len(c.buf) - c.offset
	if size >= avail {
		return liberrors.ErrOutOfMemory{Required: size + 1, Available: avail}
	}

	// with a capacity of avail, append never reallocates for lines shorter than avail.
	dst := c.buf[c.offset:c.offset:len(c.buf)]
	dst = append(dst, typ, '=')
	for _, f := range fields {
		dst = f.marshalTo(dst)
	}
	dst = append(dst, '\r', '\n')

	if len(dst) != size {
		return liberrors.ErrSnprintf{Expected: size, Written: len(dst)}
	}

	c.offset += size

	return nil
}
