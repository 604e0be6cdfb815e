// Package serializer contains a SDP serializer that writes into a
// caller-provided buffer without allocating.
package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// Context is a write cursor over a caller-owned buffer.
// The buffer is never grown and never written past its length.
//
// The zero value is not initialized and must be set up with Init.
// A Context is not safe for concurrent use.
type Context struct {
	buf    []byte
	offset int
}

// Init binds the context to buf and rewinds the cursor.
// The capacity of the context is len(buf).
func (c *Context) Init(buf []byte) error {
	if c == nil {
		return liberrors.ErrBadParam{Reason: "context is nil"}
	}

	if len(buf) == 0 {
		return liberrors.ErrBadParam{Reason: "buffer is empty"}
	}

	c.buf = buf
	c.offset = 0

	return nil
}

func (c *Context) check() error {
	if c == nil {
		return liberrors.ErrBadParam{Reason: "context is nil"}
	}

	if c.buf == nil {
		return liberrors.ErrBadParam{Reason: "context is not initialized"}
	}

	return nil
}

// Len returns the number of bytes written so far.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return c.offset
}

// Cap returns the capacity of the buffer.
func (c *Context) Cap() int {
	if c == nil {
		return 0
	}
	return len(c.buf)
}

// Available returns the number of bytes that have not been written yet.
func (c *Context) Available() int {
	if c == nil {
		return 0
	}
	return len(c.buf) - c.offset
}

// Reset rewinds the cursor, keeping the buffer.
func (c *Context) Reset() {
	if c == nil {
		return
	}
	c.offset = 0
}

// Finalize returns the bytes written so far.
// It does not change the cursor and can be called again after further appends.
// The returned slice shares memory with the buffer and has its capacity
// clipped to its length.
func (c *Context) Finalize() ([]byte, error) {
	err := c.check()
	if err != nil {
		return nil, err
	}

	return c.buf[:c.offset:c.offset], nil
}
