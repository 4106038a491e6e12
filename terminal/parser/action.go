package parser

// ActionType is the action the scanner is expected to take as a result of
// some input byte. The machine itself never touches the byte store; each
// action names one buffer operation.
type ActionType int

const (
	// ActionNone consumes the byte without retaining it. Used for
	// structural bytes such as sequence introducers.
	ActionNone ActionType = iota

	// ActionIgnore consumes and discards the byte.
	ActionIgnore

	// ActionPrint marks the byte as plain text. The scanner routes it
	// through the UTF-8 decoder and retains it.
	ActionPrint

	// ActionExecute emits the byte as a single control token.
	ActionExecute

	// ActionStart begins a new sequence token. The pending sequence kind
	// follows from the next state and the introducer byte.
	ActionStart

	// ActionCollect retains the byte as sequence payload.
	ActionCollect

	// ActionESCDispatch completes a two-byte escape sequence, including
	// the single shifts SS2 and SS3.
	ActionESCDispatch

	// ActionCSIDispatch completes a control sequence on its final byte.
	// The final byte is retained as the last payload byte.
	ActionCSIDispatch

	// ActionStringDispatch completes an OSC/DCS/SOS/PM/APC string on BEL
	// or on the backslash of ESC \.
	ActionStringDispatch

	// ActionAbortSequence reports a byte of the wrong class inside a CSI
	// or DCS header. The byte is left unread for reclassification.
	ActionAbortSequence

	// ActionAbortString reports an abnormally terminated sequence: a
	// control byte inside a string, or a byte after ESC that cannot form
	// a sequence. The byte is left unread for reclassification.
	ActionAbortString
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionIgnore:
		return "Ignore"
	case ActionPrint:
		return "Print"
	case ActionExecute:
		return "Execute"
	case ActionStart:
		return "Start"
	case ActionCollect:
		return "Collect"
	case ActionESCDispatch:
		return "ESCDispatch"
	case ActionCSIDispatch:
		return "CSIDispatch"
	case ActionStringDispatch:
		return "StringDispatch"
	case ActionAbortSequence:
		return "AbortSequence"
	case ActionAbortString:
		return "AbortString"
	default:
		return "Unknown"
	}
}

// Consumes reports whether the action consumes its input byte. Abort
// actions leave the offending byte unread so that the scanner can
// reclassify it from the ground state on the next call.
func (a ActionType) Consumes() bool {
	switch a {
	case ActionAbortSequence, ActionAbortString:
		return false
	default:
		return true
	}
}
