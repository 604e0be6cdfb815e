package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// Media is the content of a media description field ("m=").
type Media struct {
	// media type, for instance "audio" or "video".
	Media []byte

	// transport port.
	Port uint16

	// number of ports. Zero means that the field is not written.
	PortNum uint16

	// transport protocol, for instance "RTP/AVP". Required.
	Protocol []byte

	// media format list, for instance "0 8 96". Required.
	Fmt []byte
}

// AddMedia writes "<typ>=<media> <port>/<portNum> <protocol> <fmt>\r\n",
// or "<typ>=<media> <port> <protocol> <fmt>\r\n" when PortNum is zero.
func (c *Context) AddMedia(typ byte, m *Media) error {
	err := c.check()
	if err != nil {
		return err
	}

	if m == nil {
		return liberrors.ErrBadParam{Reason: "media is nil"}
	}

	if m.Protocol == nil {
		return liberrors.ErrBadParam{Reason: "protocol is nil"}
	}

	if m.Fmt == nil {
		return liberrors.ErrBadParam{Reason: "format list is nil"}
	}

	if m.PortNum != 0 {
		return c.appendLine(typ,
			bytesField(0, m.Media),
			uintField(' ', uint64(m.Port)),
			uintField('/', uint64(m.PortNum)),
			bytesField(' ', m.Protocol),
			bytesField(' ', m.Fmt))
	}

	return c.appendLine(typ,
		bytesField(0, m.Media),
		uintField(' ', uint64(m.Port)),
		bytesField(' ', m.Protocol),
		bytesField(' ', m.Fmt))
}
