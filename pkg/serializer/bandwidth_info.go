package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// BandwidthInfo is the content of a bandwidth field ("b=").
type BandwidthInfo struct {
	// bandwidth type, for instance "AS" or "CT". Required.
	BwType []byte

	// value, usually in kilobits per second.
	Value uint64
}

// AddBandwidthInfo writes "<typ>=<bwType>:<value>\r\n".
func (c *Context) AddBandwidthInfo(typ byte, bi *BandwidthInfo) error {
	err := c.check()
	if err != nil {
		return err
	}

	if bi == nil {
		return liberrors.ErrBadParam{Reason: "bandwidth info is nil"}
	}

	if bi.BwType == nil {
		return liberrors.ErrBadParam{Reason: "bandwidth type is nil"}
	}

	return c.appendLine(typ,
		bytesField(0, bi.BwType),
		uintField(':', bi.Value))
}
