package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// Originator is the content of an origin field ("o=").
type Originator struct {
	UserName       []byte
	SessionID      uint64
	SessionVersion uint64
	ConnectionInfo ConnectionInfo
}

// AddOriginator writes
// "<typ>=<userName> <sessionId> <sessionVersion> IN <IP4|IP6> <address>\r\n".
func (c *Context) AddOriginator(typ byte, o *Originator) error {
	err := c.check()
	if err != nil {
		return err
	}

	if o == nil {
		return liberrors.ErrBadParam{Reason: "originator is nil"}
	}

	nt, at, err := o.ConnectionInfo.validate()
	if err != nil {
		return err
	}

	return c.appendLine(typ,
		bytesField(0, o.UserName),
		uintField(' ', o.SessionID),
		uintField(' ', o.SessionVersion),
		stringField(' ', nt),
		stringField(' ', at),
		bytesField(' ', o.ConnectionInfo.Address))
}
