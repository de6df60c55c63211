package sdp

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
)

type buffer struct {
	data []byte
}

func (b *buffer) writeString(v string) *buffer {
	b.data = append(b.data, v...)
	return b
}

func (b *buffer) writeType(t LineType) *buffer {
	b.data = append(b.data, byte(t), '=')
	return b
}

func (b *buffer) writeNewline() *buffer {
	b.data = append(b.data, crlf...)
	return b
}

func (b *buffer) writeSpace() *buffer {
	b.data = append(b.data, ' ')
	return b
}

var bufferPool = sync.Pool{
	New: func() interface{} { return &buffer{} },
}

// Encoder writes descriptors in canonical form: fixed field order, CRLF
// line endings.
type Encoder struct {
	buffer *buffer
	w      io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes d. The only possible failure is the writer's.
func (e *Encoder) Encode(d *Descriptor) error {
	e.buffer = bufferPool.Get().(*buffer)
	e.encodeDescriptor(d)
	return e.flush()
}

func (e *Encoder) flush() error {
	defer func() {
		e.buffer.data = e.buffer.data[:0]
		bufferPool.Put(e.buffer)
		e.buffer = nil
	}()

	written := 0
	for written < len(e.buffer.data) {
		w, err := e.w.Write(e.buffer.data[written:])
		if err != nil {
			return &Error{Kind: KindIO, Msg: "write failed", Err: errors.Wrap(err, "sdp encode")}
		}
		written += w
	}
	return nil
}

func (e *Encoder) encodeDescriptor(d *Descriptor) {
	e.encodeVersion()
	e.encodeOriginator(d.originator)
	e.encodeText(SessionNameField, d.sessionName)

	if d.sessionInfo != nil {
		e.encodeText(SessionInfoField, *d.sessionInfo)
	}
	if d.uri != nil {
		e.encodeText(URIField, *d.uri)
	}
	for _, email := range d.emails {
		e.encodeText(EmailField, email)
	}
	for _, phone := range d.phones {
		e.encodeText(PhoneNumberField, phone)
	}
}

func (e *Encoder) encodeVersion() {
	e.buffer.writeType(VersionField).writeString("0").writeNewline()
}

func (e *Encoder) encodeOriginator(o Originator) {
	e.buffer.writeType(OriginField).
		writeString(o.username).writeSpace().
		writeString(o.id).writeSpace().
		writeString(o.version).writeSpace().
		writeString(string(o.netType)).writeSpace().
		writeString(string(o.addrType)).writeSpace().
		writeString(o.unicastAddress).
		writeNewline()
}

func (e *Encoder) encodeText(t LineType, value string) {
	e.buffer.writeType(t).writeString(value).writeNewline()
}

// Marshal returns the canonical text of d.
func (d *Descriptor) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Descriptor) String() string {
	b, err := d.Marshal()
	if err != nil {
		return ""
	}
	return string(b)
}
