package scan

// UTF8Decoder is a state machine that validates UTF-8 sequences one byte
// at a time.
//
// The tables are Bjoern Hoehrmann's DFA:
// http://bjoern.hoehrmann.de/utf-8/decoder/dfa
//
// Unlike a repairing decoder this one reports rejection to the caller:
// the scanner surfaces malformed text as an error and resynchronizes, it
// never substitutes a replacement character.
type UTF8Decoder struct {
	state       uint8
	accumulator uint32
}

func NewUTF8Decoder() *UTF8Decoder {
	return &UTF8Decoder{
		state:       stateUTF8Accept,
		accumulator: 0,
	}
}

const (
	stateUTF8Accept = 0
	stateUTF8Reject = 12
)

var utf8d = [364]uint8{
	// The first part maps bytes to character classes
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,

	// The second part is the transition table that maps a combination
	// of a state of the automaton and a character class to a state.
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12, 12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// UTF8Status is the per-byte outcome of the decoder.
type UTF8Status int

const (
	// UTF8Accept: a codepoint is complete.
	UTF8Accept UTF8Status = iota
	// UTF8More: more continuation bytes are expected.
	UTF8More
	// UTF8Reject: the byte cannot extend a well-formed sequence. This
	// covers bad continuations, overlong encodings, encoded surrogates,
	// 0xC0/0xC1 and anything above 0xF4, all in a bounded number of
	// steps without backtracking.
	UTF8Reject
)

// Next takes the next byte of a UTF-8 sequence and reports
//   - the codepoint, valid only when the status is UTF8Accept
//   - the status of the sequence after this byte
//   - whether the byte was consumed
//
// The only case where the byte is not consumed is a rejection in the
// middle of a sequence: the byte itself may be perfectly valid input
// (an ASCII character, an escape) and the caller must present it again.
// A rejection always resets the decoder to the boundary state.
func (d *UTF8Decoder) Next(c uint8) (cp uint32, status UTF8Status, consumed bool) {
	typ := utf8d[c]

	initial := d.state

	if d.state != stateUTF8Accept {
		d.accumulator <<= 6
		d.accumulator |= (uint32(c) & 0x3F)
	} else {
		d.accumulator = (uint32(0xFF) >> typ) & (uint32(c))
	}
	d.state = utf8d[256+int(d.state)+int(typ)]

	switch d.state {
	case stateUTF8Accept:
		cp = d.accumulator
		d.accumulator = 0
		return cp, UTF8Accept, true

	case stateUTF8Reject:
		d.accumulator = 0
		d.state = stateUTF8Accept

		// If we rejected the first byte of a sequence it was consumed,
		// otherwise it was not.
		return 0, UTF8Reject, initial == stateUTF8Accept

	default:
		return 0, UTF8More, true
	}
}

// AtBoundary reports whether the decoder sits between codepoints.
func (d *UTF8Decoder) AtBoundary() bool {
	return d.state == stateUTF8Accept
}

// Reset discards any partially decoded codepoint.
func (d *UTF8Decoder) Reset() {
	d.state = stateUTF8Accept
	d.accumulator = 0
}
