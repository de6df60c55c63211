package sdp

import (
	"net/url"
	"strconv"

	psdp "github.com/pion/sdp/v3"
)

// ToPion converts d to a pion session description. pion keeps the session
// id and version as unsigned integers and holds a single email and phone,
// so non-numeric ids fail and only the first email and phone are carried.
// A permanent "t=0 0" timing is added because pion requires one.
func (d *Descriptor) ToPion() (*psdp.SessionDescription, error) {
	id, err := strconv.ParseUint(d.originator.id, 10, 64)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Msg: "originator id is not numeric", Err: err}
	}
	version, err := strconv.ParseUint(d.originator.version, 10, 64)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Msg: "originator version is not numeric", Err: err}
	}

	s := &psdp.SessionDescription{
		Version: 0,
		Origin: psdp.Origin{
			Username:       d.originator.username,
			SessionID:      id,
			SessionVersion: version,
			NetworkType:    string(d.originator.netType),
			AddressType:    string(d.originator.addrType),
			UnicastAddress: d.originator.unicastAddress,
		},
		SessionName: psdp.SessionName(d.sessionName),
		TimeDescriptions: []psdp.TimeDescription{
			{Timing: psdp.Timing{StartTime: 0, StopTime: 0}},
		},
	}

	if d.sessionInfo != nil {
		info := psdp.Information(*d.sessionInfo)
		s.SessionInformation = &info
	}
	if d.uri != nil {
		u, err := url.Parse(*d.uri)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Msg: "session description is not a valid uri", Err: err}
		}
		s.URI = u
	}
	if len(d.emails) > 0 {
		email := psdp.EmailAddress(d.emails[0])
		s.EmailAddress = &email
	}
	if len(d.phones) > 0 {
		phone := psdp.PhoneNumber(d.phones[0])
		s.PhoneNumber = &phone
	}

	return s, nil
}

// FromPion builds a descriptor from a pion session description. The result
// goes through the same validation as a decoded one.
func FromPion(s *psdp.SessionDescription) (*Descriptor, error) {
	if s.Version != 0 {
		return nil, grammarError("unexpected or incorrect version %d, should be v=0", s.Version)
	}

	origin, err := NewOriginatorBuilder().
		WithUsername(s.Origin.Username).
		WithID(strconv.FormatUint(s.Origin.SessionID, 10)).
		WithVersion(strconv.FormatUint(s.Origin.SessionVersion, 10)).
		WithNetworkType(NetworkType(s.Origin.NetworkType)).
		WithAddressType(AddressType(s.Origin.AddressType)).
		WithUnicastAddress(s.Origin.UnicastAddress).
		Build()
	if err != nil {
		return nil, err
	}

	b := NewBuilder().
		WithOriginator(origin).
		WithSessionName(string(s.SessionName))
	if s.SessionInformation != nil {
		b.WithSessionInfo(string(*s.SessionInformation))
	}
	if s.URI != nil {
		b.WithSessionDescription(s.URI.String())
	}
	if s.EmailAddress != nil {
		b.WithEmail(string(*s.EmailAddress))
	}
	if s.PhoneNumber != nil {
		b.WithPhone(string(*s.PhoneNumber))
	}

	return b.Build()
}
