package sdp

import (
	"strings"
)

// Originator is the origin ("o=") field, rfc4566 §5.2.
type Originator struct {
	username       string
	id             string
	version        string
	netType        NetworkType
	addrType       AddressType
	unicastAddress string
}

func (o Originator) Username() string { return o.username }
func (o Originator) ID() string { return o.id }
func (o Originator) Version() string { return o.version }
func (o Originator) NetworkType() NetworkType { return o.netType }
func (o Originator) AddressType() AddressType { return o.addrType }
func (o Originator) UnicastAddress() string { return o.unicastAddress }

// String renders the value of the origin line, without the "o=" prefix.
func (o Originator) String() string {
	return strings.Join([]string{
		o.username,
		o.id,
		o.version,
		string(o.netType),
		string(o.addrType),
		o.unicastAddress,
	}, " ")
}

// OriginatorBuilder collects origin values. The zero value is ready to use.
type OriginatorBuilder struct {
	username       string
	id             string
	version        string
	netType        NetworkType
	addrType       AddressType
	unicastAddress string
}

// NewOriginatorBuilder returns a builder with the network type set to IN.
func NewOriginatorBuilder() *OriginatorBuilder {
	return &OriginatorBuilder{netType: NetworkInternet}
}

func (b *OriginatorBuilder) WithUsername(username string) *OriginatorBuilder {
	b.username = username
	return b
}

func (b *OriginatorBuilder) WithID(id string) *OriginatorBuilder {
	b.id = id
	return b
}

func (b *OriginatorBuilder) WithVersion(version string) *OriginatorBuilder {
	b.version = version
	return b
}

func (b *OriginatorBuilder) WithNetworkType(netType NetworkType) *OriginatorBuilder {
	b.netType = netType
	return b
}

func (b *OriginatorBuilder) WithAddressType(addrType AddressType) *OriginatorBuilder {
	b.addrType = addrType
	return b
}

func (b *OriginatorBuilder) WithUnicastAddress(address string) *OriginatorBuilder {
	b.unicastAddress = address
	return b
}

// Build validates the collected values. An empty username becomes "-" and
// an unset network type becomes IN.
func (b *OriginatorBuilder) Build() (Originator, error) {
	o := Originator{
		username:       b.username,
		id:             b.id,
		version:        b.version,
		netType:        b.netType,
		addrType:       b.addrType,
		unicastAddress: b.unicastAddress,
	}
	if o.username == "" {
		o.username = DefaultUsername
	}
	if o.netType == "" {
		o.netType = NetworkInternet
	}

	switch {
	case o.id == "":
		return Originator{}, validationError("originator id value not set")
	case o.version == "":
		return Originator{}, validationError("originator version value not set")
	case o.addrType == "":
		return Originator{}, validationError("originator address-type value not set")
	case o.unicastAddress == "":
		return Originator{}, validationError("originator address value not set")
	case !o.netType.Valid():
		return Originator{}, validationError("originator nettype %q is not IN", o.netType)
	case !o.addrType.Valid():
		return Originator{}, validationError("originator addrtype %q is not IP4 or IP6", o.addrType)
	}

	return o, nil
}

// parseOriginator parses the value of an "o=" line.
func parseOriginator(value string) (Originator, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	if len(fields) != 6 {
		return Originator{}, grammarError("originator entry must contain 6 parts, got %d", len(fields))
	}
	if NetworkType(fields[3]) != NetworkInternet {
		return Originator{}, grammarError("nettype must equal IN, got %q", fields[3])
	}
	if !AddressType(fields[4]).Valid() {
		return Originator{}, grammarError("addrtype must equal IP4 or IP6, got %q", fields[4])
	}

	return NewOriginatorBuilder().
		WithUsername(fields[0]).
		WithID(fields[1]).
		WithVersion(fields[2]).
		WithAddressType(AddressType(fields[4])).
		WithUnicastAddress(fields[5]).
		Build()
}
