package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// Attribute is the content of an attribute field ("a=").
type Attribute struct {
	// attribute name. Required.
	Name []byte

	// attribute value. When nil, the attribute is a property attribute.
	Value []byte
}

// AddAttribute writes "<typ>=<name>:<value>\r\n",
// or "<typ>=<name>\r\n" when the attribute has no value.
func (c *Context) AddAttribute(typ byte, a *Attribute) error {
	err := c.check()
	if err != nil {
		return err
	}

	if a == nil {
		return liberrors.ErrBadParam{Reason: "attribute is nil"}
	}

	if a.Name == nil {
		return liberrors.ErrBadParam{Reason: "attribute name is nil"}
	}

	if a.Value != nil {
		return c.appendLine(typ,
			bytesField(0, a.Name),
			bytesField(':', a.Value))
	}

	return c.appendLine(typ, bytesField(0, a.Name))
}
