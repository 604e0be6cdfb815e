package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// AddStringValue writes "<typ>=<value>\r\n".
func (c *Context) AddStringValue(typ byte, value []byte) error {
	err := c.check()
	if err != nil {
		return err
	}

	if len(value) == 0 {
		return liberrors.ErrBadParam{Reason: "value is empty"}
	}

	return c.appendLine(typ, bytesField(0, value))
}

// AddU32 writes "<typ>=<value>\r\n" with value in decimal form.
func (c *Context) AddU32(typ byte, value uint32) error {
	err := c.check()
	if err != nil {
		return err
	}

	return c.appendLine(typ, uintField(0, uint64(value)))
}

// AddU64 writes "<typ>=<value>\r\n" with value in decimal form.
func (c *Context) AddU64(typ byte, value uint64) error {
	err := c.check()
	if err != nil {
		return err
	}

	return c.appendLine(typ, uintField(0, value))
}
