// Package sdp implements Session Description Protocol (SDP), rfc4566
//
// The decoder enforces the relative ordering of session-level fields,
// validates the version and origin sub-grammars and yields an immutable
// Descriptor. The encoder renders a Descriptor back to canonical text.
package sdp

import "github.com/samber/lo"

// LineType is the single character that starts every SDP line.
type LineType byte

const (
	VersionField       LineType = 'v'
	OriginField        LineType = 'o'
	SessionNameField   LineType = 's'
	SessionInfoField   LineType = 'i'
	URIField           LineType = 'u'
	EmailField         LineType = 'e'
	PhoneNumberField   LineType = 'p'
	ConnectionField    LineType = 'c'
	BandwidthField     LineType = 'b'
	TimeZoneField      LineType = 'z'
	EncryptionKeyField LineType = 'k'
	AttributeField     LineType = 'a'
	TimingField        LineType = 't'
	RepeatTimeField    LineType = 'r'
	MediaDescField     LineType = 'm'
)

// lineTypes is the closed set of types a line may start with.
var lineTypes = []LineType{
	VersionField,
	OriginField,
	SessionNameField,
	SessionInfoField,
	URIField,
	EmailField,
	PhoneNumberField,
	ConnectionField,
	BandwidthField,
	TimeZoneField,
	EncryptionKeyField,
	AttributeField,
	TimingField,
	RepeatTimeField,
	MediaDescField,
}

func (t LineType) String() string {
	return string(rune(t))
}

// Known reports whether t belongs to the rfc4566 type alphabet.
func (t LineType) Known() bool {
	return lo.Contains(lineTypes, t)
}

// NetworkType is the <nettype> of an origin line.
type NetworkType string

const (
	NetworkInternet NetworkType = "IN"
)

// AddressType is the <addrtype> of an origin line.
type AddressType string

const (
	TypeIPv4 AddressType = "IP4"
	TypeIPv6 AddressType = "IP6"
)

var addressTypes = []AddressType{TypeIPv4, TypeIPv6}

// Valid reports whether a is IP4 or IP6.
func (a AddressType) Valid() bool {
	return lo.Contains(addressTypes, a)
}

// Valid reports whether n is IN.
func (n NetworkType) Valid() bool {
	return n == NetworkInternet
}

const (
	// DefaultUsername is used for the origin when no username is set.
	DefaultUsername = "-"

	crlf = "\r\n"
)

// isValidLine reports whether line has the minimal `x=value` shape with
// x taken from the type alphabet. Anything else is dropped by the decoder.
func isValidLine(line string) bool {
	if len(line) < 3 || line[1] != '=' {
		return false
	}
	return LineType(line[0]).Known()
}
