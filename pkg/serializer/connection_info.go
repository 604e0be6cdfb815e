package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// ConnectionInfo is the content of a connection data field ("c=").
type ConnectionInfo struct {
	// must be NetworkTypeInternet.
	NetworkType NetworkType

	// must be AddressTypeIPv4 or AddressTypeIPv6.
	AddressType AddressType

	// connection address. Required.
	Address []byte
}

// validate returns the tokens of the network type and of the address type.
func (ci *ConnectionInfo) validate() (string, string, error) {
	if ci.Address == nil {
		return "", "", liberrors.ErrBadParam{Reason: "address is nil"}
	}

	nt, ok := networkTypeTokens[ci.NetworkType]
	if !ok {
		return "", "", liberrors.ErrBadParam{Reason: "unsupported network type"}
	}

	at, ok := addressTypeTokens[ci.AddressType]
	if !ok {
		return "", "", liberrors.ErrBadParam{Reason: "unsupported address type"}
	}

	return nt, at, nil
}

// AddConnectionInfo writes "<typ>=IN <IP4|IP6> <address>\r\n".
func (c *Context) AddConnectionInfo(typ byte, ci *ConnectionInfo) error {
	err := c.check()
	if err != nil {
		return err
	}

	if ci == nil {
		return liberrors.ErrBadParam{Reason: "connection info is nil"}
	}

	nt, at, err := ci.validate()
	if err != nil {
		return err
	}

	return c.appendLine(typ,
		stringField(0, nt),
		stringField(' ', at),
		bytesField(' ', ci.Address))
}
