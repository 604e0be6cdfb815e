package serializer

// line types defined by RFC 4566.
const (
	TypeVersion       byte = 'v'
	TypeOrigin        byte = 'o'
	TypeSessionName   byte = 's'
	TypeInformation   byte = 'i'
	TypeURI           byte = 'u'
	TypeEmail         byte = 'e'
	TypePhone         byte = 'p'
	TypeConnection    byte = 'c'
	TypeBandwidth     byte = 'b'
	TypeTiming        byte = 't'
	TypeRepeatTimes   byte = 'r'
	TypeTimeZones     byte = 'z'
	TypeEncryptionKey byte = 'k'
	TypeAttribute     byte = 'a'
	TypeMedia         byte = 'm'
)

// NetworkType is the network type of a connection.
type NetworkType int

const (
	// NetworkTypeInternet is the Internet network type ("IN").
	NetworkTypeInternet NetworkType = iota + 1
)

var networkTypeTokens = map[NetworkType]string{
	NetworkTypeInternet: "IN",
}

// String implements fmt.Stringer.
func (t NetworkType) String() string {
	if l, ok := networkTypeTokens[t]; ok {
		return l
	}
	return "unknown"
}

// AddressType is the address type of a connection.
type AddressType int

const (
	// AddressTypeIPv4 is an IPv4 address ("IP4").
	AddressTypeIPv4 AddressType = iota + 1

	// AddressTypeIPv6 is an IPv6 address ("IP6").
	AddressTypeIPv6
)

var addressTypeTokens = map[AddressType]string{
	AddressTypeIPv4: "IP4",
	AddressTypeIPv6: "IP6",
}

// String implements fmt.Stringer.
func (t AddressType) String() string {
	if l, ok := addressTypeTokens[t]; ok {
		return l
	}
	return "unknown"
}
