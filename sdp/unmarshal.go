package sdp

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMaxLineLength bounds a single input line.
const DefaultMaxLineLength = 64 * 1024

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithStrict makes lines that have no place in the ordering grammar fatal
// instead of skipping them.
func WithStrict(strict bool) DecoderOption {
	return func(d *Decoder) {
		d.strict = strict
	}
}

// WithMaxLineLength overrides DefaultMaxLineLength. Non-positive values
// are ignored.
func WithMaxLineLength(n int) DecoderOption {
	return func(d *Decoder) {
		if n > 0 {
			d.maxLineLength = n
		}
	}
}

type Decoder struct {
	r             io.Reader
	strict        bool
	maxLineLength int
}

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r, maxLineLength: DefaultMaxLineLength}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Unmarshal decodes data with the default options.
func Unmarshal(data []byte) (*Descriptor, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// Decode reads the whole input and returns the descriptor. Lines that are
// not `x=value` with a known x are dropped; ordering and field errors
// abort the decode.
func (d *Decoder) Decode() (*Descriptor, error) {
	scanner := bufio.NewScanner(d.r)
	initial := 4096
	if d.maxLineLength < initial {
		initial = d.maxLineLength
	}
	scanner.Buffer(make([]byte, 0, initial), d.maxLineLength)

	b := NewBuilder()
	c := &cursor{}
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if !isValidLine(line) {
			logrus.WithFields(logrus.Fields{
				"function": "Decode",
				"line":     lineNum,
			}).Debug("Dropping malformed sdp line")
			continue
		}

		key, value := LineType(line[0]), line[2:]

		_, ok, err := c.advance(key)
		if err != nil {
			return nil, atLine(err, lineNum, key)
		}
		if !ok {
			if d.strict {
				return nil, &Error{
					Kind: KindOrdering,
					Line: lineNum,
					Type: key,
					Msg:  "line not allowed in " + c.phase.String() + " phase",
				}
			}
			logrus.WithFields(logrus.Fields{
				"function": "Decode",
				"line":     lineNum,
				"type":     key.String(),
				"phase":    c.phase.String(),
			}).Debug("Skipping out of order sdp line")
			continue
		}

		if c.phase != PhaseGeneral {
			// time and media lines are ordered but not stored
			continue
		}
		if err := d.parseSessionLine(b, key, value); err != nil {
			return nil, atLine(err, lineNum, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &Error{Kind: KindIO, Msg: "read failed", Err: errors.Wrap(err, "sdp decode")}
	}

	if err := c.finish(); err != nil {
		return nil, err
	}

	desc, err := b.Build()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Decode",
		"lines":        lineNum,
		"session_name": desc.SessionName(),
	}).Debug("Decoded session description")

	return desc, nil
}

func (d *Decoder) parseSessionLine(b *Builder, key LineType, value string) error {
	switch key {
	case VersionField:
		return d.parseVersion(value)
	case OriginField:
		origin, err := parseOriginator(value)
		if err != nil {
			return err
		}
		b.WithOriginator(origin)
	case SessionNameField:
		b.WithSessionName(value)
	case SessionInfoField:
		b.WithSessionInfo(value)
	case URIField:
		b.WithSessionDescription(value)
	case EmailField:
		b.WithEmail(value)
	case PhoneNumberField:
		b.WithPhone(value)
	}
	return nil
}

func (d *Decoder) parseVersion(value string) error {
	version, err := strconv.Atoi(value)
	if err != nil {
		return grammarError("invalid version %q, should be v=0", value)
	}
	if version != 0 {
		return grammarError("unexpected or incorrect version %d, should be v=0", version)
	}
	return nil
}
