package sdp

import (
	"net/url"
	"strings"
)

// Descriptor is a validated session description. It can only be produced
// by Builder.Build and is never modified afterwards.
type Descriptor struct {
	originator  Originator
	sessionName string
	sessionInfo *string
	uri         *string
	emails      []string
	phones      []string
}

func (d *Descriptor) Originator() Originator {
	return d.originator
}

func (d *Descriptor) SessionName() string {
	return d.sessionName
}

// SessionInfo returns the "i=" value, if any.
func (d *Descriptor) SessionInfo() (string, bool) {
	if d.sessionInfo == nil {
		return "", false
	}
	return *d.sessionInfo, true
}

// SessionDescription returns the "u=" URI, if any.
func (d *Descriptor) SessionDescription() (string, bool) {
	if d.uri == nil {
		return "", false
	}
	return *d.uri, true
}

// Emails returns a copy of the "e=" values in input order.
func (d *Descriptor) Emails() []string {
	return append([]string(nil), d.emails...)
}

// Phones returns a copy of the "p=" values in input order.
func (d *Descriptor) Phones() []string {
	return append([]string(nil), d.phones...)
}

// Builder accumulates descriptor fields. It is single use and must not be
// shared between goroutines.
type Builder struct {
	originator  *Originator
	sessionName *string
	sessionInfo *string
	uri         *string
	emails      []string
	phones      []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithOriginator(o Originator) *Builder {
	b.originator = &o
	return b
}

func (b *Builder) WithSessionName(name string) *Builder {
	b.sessionName = &name
	return b
}

func (b *Builder) WithSessionInfo(info string) *Builder {
	b.sessionInfo = &info
	return b
}

func (b *Builder) WithSessionDescription(uri string) *Builder {
	b.uri = &uri
	return b
}

func (b *Builder) WithEmail(email string) *Builder {
	b.emails = append(b.emails, email)
	return b
}

func (b *Builder) WithPhone(phone string) *Builder {
	b.phones = append(b.phones, phone)
	return b
}

// Build runs the cross-field checks and returns the descriptor.
func (b *Builder) Build() (*Descriptor, error) {
	if b.originator == nil {
		return nil, validationError("originator value not set")
	}
	if b.sessionName == nil {
		return nil, validationError("session name value not set")
	}
	if b.uri != nil {
		if err := validateURI(*b.uri); err != nil {
			return nil, err
		}
	}

	return &Descriptor{
		originator:  *b.originator,
		sessionName: *b.sessionName,
		sessionInfo: b.sessionInfo,
		uri:         b.uri,
		emails:      append([]string(nil), b.emails...),
		phones:      append([]string(nil), b.phones...),
	}, nil
}

// uriExcluded are the characters rfc3986 never allows unescaped; net/url
// tolerates several of them outside the host.
const uriExcluded = " \t\"<>\\^`{|}"

// validateURI checks URI syntax only; the target is never resolved.
func validateURI(raw string) error {
	if raw == "" {
		return validationError("session description uri is empty")
	}
	if strings.ContainsAny(raw, uriExcluded) {
		return validationError("session description %q is not a valid uri", raw)
	}
	for _, r := range raw {
		if r < 0x20 || r == 0x7f {
			return validationError("session description %q is not a valid uri", raw)
		}
	}
	if _, err := url.Parse(raw); err != nil {
		return &Error{Kind: KindValidation, Msg: "session description is not a valid uri", Err: err}
	}
	return nil
}
