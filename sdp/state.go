package sdp

// Phase is a stage of the rfc4566 §5 ordering grammar.
type Phase int

const (
	PhaseGeneral Phase = iota
	PhaseTime
	PhaseMedia
)

func (p Phase) String() string {
	switch p {
	case PhaseGeneral:
		return "general"
	case PhaseTime:
		return "time"
	case PhaseMedia:
		return "media"
	default:
		return "unknown"
	}
}

// entry is one position of a phase's ordered sequence.
type entry struct {
	Type       LineType
	Mandatory  bool
	Repeatable bool
	Next       Phase
}

// stateTable maps each phase to the order its lines must follow. Only the
// general v/o/s prefix is mandatory; time and media phases carry no field
// grammar yet and exist so their lines are ordered rather than dropped.
var stateTable = map[Phase][]entry{
	PhaseGeneral: {
		{Type: VersionField, Mandatory: true, Next: PhaseGeneral},
		{Type: OriginField, Mandatory: true, Next: PhaseGeneral},
		{Type: SessionNameField, Mandatory: true, Next: PhaseGeneral},
		{Type: SessionInfoField, Next: PhaseGeneral},
		{Type: URIField, Next: PhaseGeneral},
		{Type: EmailField, Repeatable: true, Next: PhaseGeneral},
		{Type: PhoneNumberField, Repeatable: true, Next: PhaseGeneral},
		{Type: ConnectionField, Next: PhaseGeneral},
		{Type: BandwidthField, Repeatable: true, Next: PhaseGeneral},
		{Type: TimingField, Next: PhaseTime},
		{Type: TimeZoneField, Next: PhaseGeneral},
		{Type: EncryptionKeyField, Next: PhaseGeneral},
		{Type: AttributeField, Repeatable: true, Next: PhaseGeneral},
		{Type: MediaDescField, Next: PhaseMedia},
	},
	PhaseTime: {
		{Type: TimingField, Next: PhaseTime},
		{Type: RepeatTimeField, Repeatable: true, Next: PhaseTime},
		{Type: TimingField, Next: PhaseTime},
		{Type: TimeZoneField, Next: PhaseTime},
		{Type: EncryptionKeyField, Next: PhaseTime},
		{Type: AttributeField, Repeatable: true, Next: PhaseTime},
		{Type: MediaDescField, Next: PhaseMedia},
	},
	PhaseMedia: {
		{Type: MediaDescField, Next: PhaseMedia},
		{Type: SessionInfoField, Next: PhaseMedia},
		{Type: ConnectionField, Repeatable: true, Next: PhaseMedia},
		{Type: BandwidthField, Repeatable: true, Next: PhaseMedia},
		{Type: EncryptionKeyField, Next: PhaseMedia},
		{Type: AttributeField, Repeatable: true, Next: PhaseMedia},
		{Type: MediaDescField, Next: PhaseMedia},
	},
}

// cursor is the per-decode position in stateTable.
type cursor struct {
	phase Phase
	index int
	// seen is set when the entry at index is repeatable and already matched.
	seen bool
}

// advance checks t against the current position and moves the cursor.
// It returns the accepted entry, or ok=false when t has no place in the
// rest of the phase. A skipped mandatory entry is an ordering error.
func (c *cursor) advance(t LineType) (e entry, ok bool, err error) {
	seq := stateTable[c.phase]
	if c.index >= len(seq) {
		return entry{}, false, nil
	}

	current := seq[c.index]
	if current.Type == t {
		c.accept(c.index, current)
		return current, true, nil
	}

	if current.Mandatory && !c.seen {
		return entry{}, false, orderingError("missing mandatory line from SDP, %s=", current.Type)
	}

	for i := c.index + 1; i < len(seq); i++ {
		if seq[i].Type == t {
			c.accept(i, seq[i])
			return seq[i], true, nil
		}
	}

	return entry{}, false, nil
}

func (c *cursor) accept(i int, e entry) {
	if next := stateTable[e.Next]; e.Next != c.phase || (i > 0 && next[0].Type == e.Type) {
		// e opens (or reopens) its phase; continue right after the head.
		if next[0].Type == e.Type {
			c.phase, c.index, c.seen = e.Next, 1, false
			return
		}
		c.phase, c.index, c.seen = e.Next, 0, false
		return
	}

	if e.Repeatable {
		c.index, c.seen = i, true
		return
	}
	c.index, c.seen = i+1, false
}

// finish reports a mandatory entry the input never reached.
func (c *cursor) finish() error {
	seq := stateTable[c.phase]
	if c.index < len(seq) && seq[c.index].Mandatory && !c.seen {
		return orderingError("missing mandatory line from SDP, %s=", seq[c.index].Type)
	}
	return nil
}
