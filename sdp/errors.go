package sdp

import (
	"fmt"
)

// Kind classifies a decode or encode failure.
type Kind int

const (
	// KindOrdering is a mandatory line that was skipped, or a line in a
	// position its phase does not allow.
	KindOrdering Kind = iota + 1
	// KindFieldGrammar is a line whose value breaks the field's grammar.
	KindFieldGrammar
	// KindValidation is a descriptor that fails cross-field checks.
	KindValidation
	// KindIO is a failure of the underlying reader or writer.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindOrdering:
		return "ordering violation"
	case KindFieldGrammar:
		return "field grammar violation"
	case KindValidation:
		return "validation failure"
	case KindIO:
		return "i/o failure"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind. Any *Error matches the sentinel of its
// kind through errors.Is.
var (
	ErrOrdering     = &Error{Kind: KindOrdering}
	ErrFieldGrammar = &Error{Kind: KindFieldGrammar}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrIO           = &Error{Kind: KindIO}
)

// Error is returned by the decoder, the builders and the encoder.
// Line is 1-based and zero when the failure is not tied to one line.
type Error struct {
	Kind Kind
	Line int
	Type LineType
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("sdp: line %d (%s=): %s", e.Line, e.Type, msg)
	}
	return "sdp: " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Msg == "" && t.Line == 0 && t.Err == nil && t.Kind == e.Kind
}

func orderingError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindOrdering, Msg: fmt.Sprintf(format, args...)}
}

func grammarError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindFieldGrammar, Msg: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// atLine attaches line context unless it is already there.
func atLine(err error, line int, t LineType) error {
	e, ok := err.(*Error)
	if !ok || e.Line != 0 {
		return err
	}
	c := *e
	c.Line = line
	c.Type = t
	return &c
}
