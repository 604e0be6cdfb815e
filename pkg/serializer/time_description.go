package serializer

import (
	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

// TimeDescription is the content of a timing field ("t=").
// Times are NTP timestamps, in seconds.
type TimeDescription struct {
	StartTime uint64
	StopTime  uint64
}

// AddTimeActive writes "<typ>=<startTime> <stopTime>\r\n".
func (c *Context) AddTimeActive(typ byte, td *TimeDescription) error {
	err := c.check()
	if err != nil {
		return err
	}

	if td == nil {
		return liberrors.ErrBadParam{Reason: "time description is nil"}
	}

	return c.appendLine(typ,
		uintField(0, td.StartTime),
		uintField(' ', td.StopTime))
}
