// Package signaling carries SDP session descriptions through an offer/answer
// exchange.
package signaling

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/nostressdev/signaling/sdp"
)

// SessionDescription pairs a descriptor with its offer/answer role. SDP
// always holds the canonical text of Descriptor; a rollback carries neither.
type SessionDescription struct {
	Type       SdpType
	SDP        string
	Descriptor *sdp.Descriptor
}

// NewSessionDescription renders d as the SDP text of a description.
func NewSessionDescription(typ SdpType, d *sdp.Descriptor) (*SessionDescription, error) {
	s := &SessionDescription{Type: typ}
	if typ == SdpTypeRollback {
		return s, nil
	}
	if d == nil {
		return nil, makeError(ErrInvalidModification, "missing descriptor for "+typ.String())
	}
	if err := s.setDescriptor(d); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseSessionDescription decodes text and keeps it in canonical form.
func ParseSessionDescription(typ SdpType, text string, opts ...sdp.DecoderOption) (*SessionDescription, error) {
	if typ == SdpTypeRollback {
		return &SessionDescription{Type: typ}, nil
	}

	d, err := sdp.NewDecoder(strings.NewReader(text), opts...).Decode()
	if err != nil {
		return nil, wrapError(ErrSyntax, "invalid "+typ.String(), err)
	}
	return NewSessionDescription(typ, d)
}

func (s *SessionDescription) setDescriptor(d *sdp.Descriptor) error {
	var buf bytes.Buffer
	if err := sdp.NewEncoder(&buf).Encode(d); err != nil {
		return err
	}
	s.Descriptor = d
	s.SDP = buf.String()
	return nil
}

type sessionDescriptionJSON struct {
	Type SdpType `json:"type"`
	SDP  string  `json:"sdp,omitempty"`
}

func (s *SessionDescription) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionDescriptionJSON{Type: s.Type, SDP: s.SDP})
}

// UnmarshalJSON accepts {"type": ..., "sdp": ...} and validates the SDP.
func (s *SessionDescription) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type string `json:"type"`
		SDP  string `json:"sdp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	typ, err := ParseSdpType(raw.Type)
	if err != nil {
		return err
	}
	parsed, err := ParseSessionDescription(typ, raw.SDP)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
