package parser

// This contains the state transition table for the escape sequence
// grammar: a DEC-VT compatible superset of ECMA-48.
//
// The shape follows the vt100.net state machine
// (https://vt100.net/emu/dec_ansi_parser) with three deliberate
// departures:
//
//   - a two-byte escape sequence dispatches immediately, there is no
//     escape-intermediate state
//   - a C0 control inside an OSC/DCS/SOS/PM/APC string aborts the string
//     instead of being swallowed
//   - an ignore state still dispatches on a valid final byte, using the
//     payload collected before the violation
type parserTable [256][stateCount]Transition

var table = newParserTable()

func newParserTable() *parserTable {
	t := new(parserTable)

	// ground
	{
		source := StateGround

		// C0 controls are single tokens, except ESC.
		t.addRange(0x00, 0x1A, source, source, ActionExecute)
		t.addSingle(0x1B, source, StateEscape, ActionStart)
		t.addRange(0x1C, 0x1F, source, source, ActionExecute)

		t.addRange(0x20, 0x7E, source, source, ActionPrint)
		t.addSingle(0x7F, source, source, ActionExecute)

		// C1 controls; the sequence introducers start a token, the
		// single shifts dispatch immediately, the rest are tokens of
		// their own.
		t.addRange(0x80, 0x8D, source, source, ActionExecute)
		t.addSingle(0x8E, source, source, ActionESCDispatch)
		t.addSingle(0x8F, source, source, ActionESCDispatch)
		t.addSingle(0x90, source, StateDCSEntry, ActionStart)
		t.addRange(0x91, 0x97, source, source, ActionExecute)
		t.addSingle(0x98, source, StateSosPmApcString, ActionStart)
		t.addRange(0x99, 0x9A, source, source, ActionExecute)
		t.addSingle(0x9B, source, StateCSIEntry, ActionStart)
		t.addSingle(0x9C, source, source, ActionExecute)
		t.addSingle(0x9D, source, StateOSCString, ActionStart)
		t.addSingle(0x9E, source, StateSosPmApcString, ActionStart)
		t.addSingle(0x9F, source, StateSosPmApcString, ActionStart)

		// UTF-8 leads and continuations; the decoder sorts them out.
		t.addRange(0xA0, 0xFF, source, source, ActionPrint)
	}

	// escape
	{
		source := StateEscape

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortString)

		// Anything printable that is not a recognized introducer is a
		// complete two-byte sequence, single shifts included.
		t.addRange(0x20, 0x4F, source, StateGround, ActionESCDispatch)
		t.addSingle(0x50, source, StateDCSEntry, ActionStart)
		t.addRange(0x51, 0x57, source, StateGround, ActionESCDispatch)
		t.addSingle(0x58, source, StateSosPmApcString, ActionStart)
		t.addRange(0x59, 0x5A, source, StateGround, ActionESCDispatch)
		t.addSingle(0x5C, source, StateGround, ActionESCDispatch)
		t.addSingle(0x5B, source, StateCSIEntry, ActionStart)
		t.addSingle(0x5D, source, StateOSCString, ActionStart)
		t.addSingle(0x5E, source, StateSosPmApcString, ActionStart)
		t.addSingle(0x5F, source, StateSosPmApcString, ActionStart)
		t.addRange(0x60, 0x7E, source, StateGround, ActionESCDispatch)

		t.addRange(0x7F, 0xFF, source, StateGround, ActionAbortString)
	}

	// csiEntry
	{
		source := StateCSIEntry

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x2F, source, StateCSIIntermediate, ActionCollect)
		t.addRange(0x30, 0x3F, source, StateCSIParam, ActionCollect)
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// csiParam
	{
		source := StateCSIParam

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x2F, source, StateCSIIntermediate, ActionCollect)
		t.addRange(0x30, 0x3F, source, source, ActionCollect)
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// csiIntermediate
	{
		source := StateCSIIntermediate

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x2F, source, source, ActionCollect)

		// A parameter byte after an intermediate byte is out of order.
		t.addRange(0x30, 0x3F, source, StateCSIIgnore, ActionIgnore)

		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// csiIgnore
	{
		source := StateCSIIgnore

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x3F, source, source, ActionIgnore)
		t.addRange(0x40, 0x7E, source, StateGround, ActionCSIDispatch)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// dcsEntry
	{
		source := StateDCSEntry

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x2F, source, StateDCSIntermediate, ActionCollect)
		t.addRange(0x30, 0x3F, source, StateDCSParam, ActionCollect)
		t.addRange(0x40, 0x7E, source, StateDCSPassthrough, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// dcsParam
	{
		source := StateDCSParam

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x2F, source, StateDCSIntermediate, ActionCollect)
		t.addRange(0x30, 0x3F, source, source, ActionCollect)
		t.addRange(0x40, 0x7E, source, StateDCSPassthrough, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// dcsIntermediate
	{
		source := StateDCSIntermediate

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x2F, source, source, ActionCollect)
		t.addRange(0x30, 0x3F, source, StateDCSIgnore, ActionIgnore)
		t.addRange(0x40, 0x7E, source, StateDCSPassthrough, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// dcsIgnore
	{
		source := StateDCSIgnore

		t.addRange(0x00, 0x1F, source, StateGround, ActionAbortSequence)
		t.addRange(0x20, 0x3F, source, source, ActionIgnore)
		t.addRange(0x40, 0x7E, source, StateDCSPassthrough, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, StateGround, ActionAbortSequence)
	}

	// The string-carrying states share one byte grammar: BEL or ESC \
	// terminates, any other C0 control aborts, everything else is payload.
	for _, source := range []State{
		StateOSCString,
		StateDCSPassthrough,
		StateSosPmApcString,
	} {
		t.addRange(0x00, 0x06, source, StateGround, ActionAbortString)
		t.addSingle(0x07, source, StateGround, ActionStringDispatch)
		t.addRange(0x08, 0x1A, source, StateGround, ActionAbortString)
		t.addSingle(0x1B, source, StateStringEscape, ActionNone)
		t.addRange(0x1C, 0x1F, source, StateGround, ActionAbortString)
		t.addRange(0x20, 0x7E, source, source, ActionCollect)
		t.addSingle(0x7F, source, source, ActionIgnore)
		t.addRange(0x80, 0xFF, source, source, ActionCollect)
	}

	// stringEscape: an ESC arrived inside a string; only a backslash
	// (completing ST) may follow.
	{
		source := StateStringEscape

		t.addRange(0x00, 0x5B, source, StateGround, ActionAbortString)
		t.addSingle(0x5C, source, StateGround, ActionStringDispatch)
		t.addRange(0x5D, 0xFF, source, StateGround, ActionAbortString)
	}

	return t
}

func (t *parserTable) addSingle(c uint8, s0 State, s1 State, a ActionType) {
	t[c][s0] = transition(s1, a)
}

func (t *parserTable) addRange(from uint8, to uint8, s0 State, s1 State, a ActionType) {
	i := from
	for {
		if i <= to {
			t.addSingle(i, s0, s1, a)
		}
		// If to is 0xFF, increasing i would overflow. Return early.
		if i == to {
			break
		}
		i++
	}
}

type Transition struct {
	State  State
	Action ActionType
}

func transition(state State, action ActionType) Transition {
	return Transition{State: state, Action: action}
}
