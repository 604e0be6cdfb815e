package serializer

import (
	"fmt"
	"strconv"

	psdp "github.com/pion/sdp/v3"

	"github.com/bluenviron/sdpserializer/pkg/liberrors"
)

func lineError(typ byte, err error) error {
	return fmt.Errorf("unable to write '%c' line: %w", typ, err)
}

func appendList(b []byte, list []string, sep byte) []byte {
	for i, v := range list {
		if i != 0 {
			b = append(b, sep)
		}
		b = append(b, v...)
	}
	return b
}

func networkTypeFromToken(tok string) NetworkType {
	for k, v := range networkTypeTokens {
		if v == tok {
			return k
		}
	}
	return 0
}

func addressTypeFromToken(tok string) AddressType {
	for k, v := range addressTypeTokens {
		if v == tok {
			return k
		}
	}
	return 0
}

// resetScratch empties b, allocating it when needed so that empty values
// are never confused with missing ones.
func resetScratch(b []byte) []byte {
	if b == nil {
		return make([]byte, 0, 128)
	}
	return b[:0]
}

// sessionEncoder converts pion fields into serializer values.
// Text that has to be assembled is built into reusable scratch buffers.
type sessionEncoder struct {
	c *Context

	buf1 []byte
	buf2 []byte
	buf3 []byte
}

func (e *sessionEncoder) addString(typ byte, v string) error {
	e.buf1 = append(resetScratch(e.buf1), v...)
	err := e.c.AddStringValue(typ, e.buf1)
	if err != nil {
		return lineError(typ, err)
	}
	return nil
}

func (e *sessionEncoder) addConnectionInformation(ci *psdp.ConnectionInformation) error {
	if ci.Address == nil {
		return lineError(TypeConnection, liberrors.ErrBadParam{Reason: "address is nil"})
	}

	e.buf1 = append(resetScratch(e.buf1), ci.Address.Address...)
	if ci.Address.TTL != nil {
		e.buf1 = append(e.buf1, '/')
		e.buf1 = strconv.AppendInt(e.buf1, int64(*ci.Address.TTL), 10)
	}
	if ci.Address.Range != nil {
		e.buf1 = append(e.buf1, '/')
		e.buf1 = strconv.AppendInt(e.buf1, int64(*ci.Address.Range), 10)
	}

	err := e.c.AddConnectionInfo(TypeConnection, &ConnectionInfo{
		NetworkType: networkTypeFromToken(ci.NetworkType),
		AddressType: addressTypeFromToken(ci.AddressType),
		Address:     e.buf1,
	})
	if err != nil {
		return lineError(TypeConnection, err)
	}
	return nil
}

func (e *sessionEncoder) addBandwidths(bws []psdp.Bandwidth) error {
	for _, bw := range bws {
		e.buf1 = resetScratch(e.buf1)
		if bw.Experimental {
			e.buf1 = append(e.buf1, "X-"...)
		}
		e.buf1 = append(e.buf1, bw.Type...)

		err := e.c.AddBandwidthInfo(TypeBandwidth, &BandwidthInfo{
			BwType: e.buf1,
			Value:  bw.Bandwidth,
		})
		if err != nil {
			return lineError(TypeBandwidth, err)
		}
	}
	return nil
}

func (e *sessionEncoder) addAttributes(attrs []psdp.Attribute) error {
	for _, attr := range attrs {
		e.buf1 = append(resetScratch(e.buf1), attr.Key...)

		a := Attribute{Name: e.buf1}
		if attr.Value != "" {
			e.buf2 = append(resetScratch(e.buf2), attr.Value...)
			a.Value = e.buf2
		}

		err := e.c.AddAttribute(TypeAttribute, &a)
		if err != nil {
			return lineError(TypeAttribute, err)
		}
	}
	return nil
}

func (e *sessionEncoder) addMediaName(mn *psdp.MediaName) error {
	if mn.Port.Value < 0 || mn.Port.Value > 65535 {
		return lineError(TypeMedia, liberrors.ErrBadParam{Reason: "invalid port"})
	}

	var portNum uint16
	if mn.Port.Range != nil {
		if *mn.Port.Range < 1 || *mn.Port.Range > 65535 {
			return lineError(TypeMedia, liberrors.ErrBadParam{Reason: "invalid port range"})
		}
		portNum = uint16(*mn.Port.Range)
	}

	e.buf1 = appendList(resetScratch(e.buf1), mn.Protos, '/')
	e.buf2 = appendList(resetScratch(e.buf2), mn.Formats, ' ')
	e.buf3 = append(resetScratch(e.buf3), mn.Media...)

	err := e.c.AddMedia(TypeMedia, &Media{
		Media:    e.buf3,
		Port:     uint16(mn.Port.Value),
		PortNum:  portNum,
		Protocol: e.buf1,
		Fmt:      e.buf2,
	})
	if err != nil {
		return lineError(TypeMedia, err)
	}
	return nil
}

func (e *sessionEncoder) addMediaDescription(md *psdp.MediaDescription) error {
	if md == nil {
		return lineError(TypeMedia, liberrors.ErrBadParam{Reason: "media description is nil"})
	}

	err := e.addMediaName(&md.MediaName)
	if err != nil {
		return err
	}

	if md.MediaTitle != nil {
		err = e.addString(TypeInformation, string(*md.MediaTitle))
		if err != nil {
			return err
		}
	}

	if md.ConnectionInformation != nil {
		err = e.addConnectionInformation(md.ConnectionInformation)
		if err != nil {
			return err
		}
	}

	err = e.addBandwidths(md.Bandwidth)
	if err != nil {
		return err
	}

	if md.EncryptionKey != nil {
		err = e.addString(TypeEncryptionKey, string(*md.EncryptionKey))
		if err != nil {
			return err
		}
	}

	return e.addAttributes(md.Attributes)
}

func (e *sessionEncoder) addTiming(tds []psdp.TimeDescription) error {
	for _, td := range tds {
		err := e.c.AddTimeActive(TypeTiming, &TimeDescription{
			StartTime: td.Timing.StartTime,
			StopTime:  td.Timing.StopTime,
		})
		if err != nil {
			return lineError(TypeTiming, err)
		}

		for _, r := range td.RepeatTimes {
			e.buf1 = strconv.AppendInt(resetScratch(e.buf1), r.Interval, 10)
			e.buf1 = append(e.buf1, ' ')
			e.buf1 = strconv.AppendInt(e.buf1, r.Duration, 10)
			for _, o := range r.Offsets {
				e.buf1 = append(e.buf1, ' ')
				e.buf1 = strconv.AppendInt(e.buf1, o, 10)
			}

			err = e.c.AddStringValue(TypeRepeatTimes, e.buf1)
			if err != nil {
				return lineError(TypeRepeatTimes, err)
			}
		}
	}

	return nil
}

func (e *sessionEncoder) addTimeZones(zones []psdp.TimeZone) error {
	if len(zones) == 0 {
		return nil
	}

	e.buf1 = resetScratch(e.buf1)
	for i, z := range zones {
		if i != 0 {
			e.buf1 = append(e.buf1, ' ')
		}
		e.buf1 = strconv.AppendUint(e.buf1, z.AdjustmentTime, 10)
		e.buf1 = append(e.buf1, ' ')
		e.buf1 = strconv.AppendInt(e.buf1, z.Offset, 10)
	}

	err := e.c.AddStringValue(TypeTimeZones, e.buf1)
	if err != nil {
		return lineError(TypeTimeZones, err)
	}
	return nil
}

func (e *sessionEncoder) encode(sd *psdp.SessionDescription) error {
	if sd.Version < 0 {
		return lineError(TypeVersion, liberrors.ErrBadParam{Reason: "invalid version"})
	}

	err := e.c.AddU64(TypeVersion, uint64(sd.Version))
	if err != nil {
		return lineError(TypeVersion, err)
	}

	e.buf1 = append(resetScratch(e.buf1), sd.Origin.Username...)
	e.buf2 = append(resetScratch(e.buf2), sd.Origin.UnicastAddress...)

	err = e.c.AddOriginator(TypeOrigin, &Originator{
		UserName:       e.buf1,
		SessionID:      sd.Origin.SessionID,
		SessionVersion: sd.Origin.SessionVersion,
		ConnectionInfo: ConnectionInfo{
			NetworkType: networkTypeFromToken(sd.Origin.NetworkType),
			AddressType: addressTypeFromToken(sd.Origin.AddressType),
			Address:     e.buf2,
		},
	})
	if err != nil {
		return lineError(TypeOrigin, err)
	}

	// RFC 4566 requires a non-empty session name.
	if sd.SessionName == "" {
		err = e.addString(TypeSessionName, " ")
	} else {
		err = e.addString(TypeSessionName, string(sd.SessionName))
	}
	if err != nil {
		return err
	}

	if sd.SessionInformation != nil {
		err = e.addString(TypeInformation, string(*sd.SessionInformation))
		if err != nil {
			return err
		}
	}

	if sd.URI != nil {
		err = e.addString(TypeURI, sd.URI.String())
		if err != nil {
			return err
		}
	}

	if sd.EmailAddress != nil {
		err = e.addString(TypeEmail, string(*sd.EmailAddress))
		if err != nil {
			return err
		}
	}

	if sd.PhoneNumber != nil {
		err = e.addString(TypePhone, string(*sd.PhoneNumber))
		if err != nil {
			return err
		}
	}

	if sd.ConnectionInformation != nil {
		err = e.addConnectionInformation(sd.ConnectionInformation)
		if err != nil {
			return err
		}
	}

	err = e.addBandwidths(sd.Bandwidth)
	if err != nil {
		return err
	}

	err = e.addTiming(sd.TimeDescriptions)
	if err != nil {
		return err
	}

	err = e.addTimeZones(sd.TimeZones)
	if err != nil {
		return err
	}

	if sd.EncryptionKey != nil {
		err = e.addString(TypeEncryptionKey, string(*sd.EncryptionKey))
		if err != nil {
			return err
		}
	}

	err = e.addAttributes(sd.Attributes)
	if err != nil {
		return err
	}

	for _, md := range sd.MediaDescriptions {
		err = e.addMediaDescription(md)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteSessionDescription writes all the lines of sd into c, in the order
// defined by RFC 4566. It stops at the first line that cannot be written;
// lines written before it are kept.
func WriteSessionDescription(c *Context, sd *psdp.SessionDescription) error {
	err := c.check()
	if err != nil {
		return err
	}

	if sd == nil {
		return liberrors.ErrBadParam{Reason: "session description is nil"}
	}

	e := sessionEncoder{c: c}
	return e.encode(sd)
}

// SessionWriter writes session descriptions into a fixed buffer.
// Scratch space is kept between calls and reused by the next Write.
type SessionWriter struct {
	// destination buffer. Its length is the maximum size of a description.
	Buffer []byte

	ctx Context
	enc sessionEncoder
}

// Write writes sd into Buffer, overwriting any previous description.
// The returned slice shares memory with Buffer.
func (w *SessionWriter) Write(sd *psdp.SessionDescription) ([]byte, error) {
	if sd == nil {
		return nil, liberrors.ErrBadParam{Reason: "session description is nil"}
	}

	err := w.ctx.Init(w.Buffer)
	if err != nil {
		return nil, err
	}

	w.enc.c = &w.ctx

	err = w.enc.encode(sd)
	if err != nil {
		return nil, err
	}

	return w.ctx.Finalize()
}
