package scan

import "fmt"

// Kind classifies scan errors.
type Kind int

const (
	// KindNoData: the source timed out with nothing to classify.
	KindNoData Kind = iota

	// KindInFlight: raw byte access was requested while a sequence was
	// in flight. Caller error, no state change.
	KindInFlight

	// KindMalformedUtf8: invalid byte in a text run. The scanner
	// resynchronizes at the next byte.
	KindMalformedUtf8

	// KindMalformedSequence: a byte of the wrong class inside a CSI or
	// DCS header. The machine resets to ground.
	KindMalformedSequence

	// KindPathologicalSequence: a sequence exceeded the buffer capacity
	// with no reclaimable space. The payload is dropped and the machine
	// resets to ground.
	KindPathologicalSequence

	// KindBadControl: a sequence token did not carry the control the
	// caller expected.
	KindBadControl

	// KindBadSequence: a well-formed prefix was aborted or could not
	// form a sequence.
	KindBadSequence

	// KindNotASequence: the caller expected a sequence token and got
	// something else.
	KindNotASequence

	// KindOutOfMemory: the buffer is truly exhausted. This is the
	// allocation-boundary twin of KindPathologicalSequence.
	KindOutOfMemory

	// KindUnreadable: the underlying read failed. Not recoverable;
	// automaton state is unspecified afterwards.
	KindUnreadable
)

func (k Kind) String() string {
	switch k {
	case KindNoData:
		return "NoData"
	case KindInFlight:
		return "InFlight"
	case KindMalformedUtf8:
		return "MalformedUtf8"
	case KindMalformedSequence:
		return "MalformedSequence"
	case KindPathologicalSequence:
		return "PathologicalSequence"
	case KindBadControl:
		return "BadControl"
	case KindBadSequence:
		return "BadSequence"
	case KindNotASequence:
		return "NotASequence"
	case KindOutOfMemory:
		return "OutOfMemory"
	case KindUnreadable:
		return "Unreadable"
	default:
		return "Unknown"
	}
}

// Recoverable reports whether the stream remains usable after an error of
// this kind. Everything recovers except an unreadable source.
func (k Kind) Recoverable() bool {
	return k != KindUnreadable
}

func (k Kind) message() string {
	switch k {
	case KindNoData:
		return "source timed out with no data"
	case KindInFlight:
		return "raw access requested while a sequence is in flight"
	case KindMalformedUtf8:
		return "malformed UTF-8 in text run"
	case KindMalformedSequence:
		return "byte grammar violation inside escape sequence"
	case KindPathologicalSequence:
		return "escape sequence exceeds buffer capacity"
	case KindBadControl:
		return "sequence carries an unexpected control"
	case KindBadSequence:
		return "escape sequence aborted"
	case KindNotASequence:
		return "token is not a sequence"
	case KindOutOfMemory:
		return "scan buffer exhausted"
	case KindUnreadable:
		return "source is unreadable"
	default:
		return "unknown scan error"
	}
}

// Error is the error type surfaced by the scanner.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Kind.message(), e.Cause)
	}
	return e.Kind.message()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same kind, so the sentinels below work
// with errors.Is even when a cause is attached.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNoData               = &Error{Kind: KindNoData}
	ErrInFlight             = &Error{Kind: KindInFlight}
	ErrMalformedUtf8        = &Error{Kind: KindMalformedUtf8}
	ErrMalformedSequence    = &Error{Kind: KindMalformedSequence}
	ErrPathologicalSequence = &Error{Kind: KindPathologicalSequence}
	ErrBadControl           = &Error{Kind: KindBadControl}
	ErrBadSequence          = &Error{Kind: KindBadSequence}
	ErrNotASequence         = &Error{Kind: KindNotASequence}
	ErrOutOfMemory          = &Error{Kind: KindOutOfMemory}
	ErrUnreadable           = &Error{Kind: KindUnreadable}
)
