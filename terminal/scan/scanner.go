package scan

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/hnimtadd/scanio/logger"
	"github.com/hnimtadd/scanio/terminal/ansi"
	"github.com/hnimtadd/scanio/terminal/parser"
	"github.com/hnimtadd/scanio/terminal/utils"
)

// Source is the byte-source capability the scanner consumes: one
// synchronous read into a caller-supplied buffer, where a zero count
// means "timed out, no data currently available" rather than end of
// stream. Timeout granularity is the source's property, not the
// scanner's.
type Source interface {
	Read(p []byte) (n int, err error)
}

// Options configures a Scanner.
type Options struct {
	// Capacity bounds how long a sequence may grow before the scanner
	// reports it as pathological. Zero means DefaultCapacity.
	Capacity int

	Logger logger.Logger
}

// Scanner turns the raw byte stream of a terminal device into discrete
// tokens: printable text runs, single control bytes, and complete escape
// sequences.
//
// A Scanner owns its buffer and automaton exclusively; exactly one call
// path drives classification at a time and ReadToken may block only
// inside the source's read. The token returned by ReadToken aliases the
// buffer and must be fully consumed before the next call.
type Scanner struct {
	src     Source
	buf     *Buffer
	machine *parser.Parser
	utf8    *UTF8Decoder

	// pending is the sequence family in flight, valid while the machine
	// is outside the ground state.
	pending Control

	logger logger.Logger
}

func NewScanner(src Source, opts Options) *Scanner {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop
	}
	return &Scanner{
		src:     src,
		buf:     NewBuffer(opts.Capacity),
		machine: parser.NewParser(),
		utf8:    NewUTF8Decoder(),
		logger:  opts.Logger,
	}
}

// InFlight reports whether a sequence is partially recognized. Raw byte
// access is unsafe while in flight.
func (s *Scanner) InFlight() bool {
	return s.machine.State != parser.StateGround
}

// Unread exposes the buffer's raw unread bytes for protocols layered on
// top of the token stream. Permitted only in the ground state, so no
// caller observes bytes the automaton has not classified.
func (s *Scanner) Unread() ([]byte, error) {
	if s.InFlight() {
		return nil, ErrInFlight
	}
	return s.buf.Unread(), nil
}

// Discard drops n raw unread bytes. Like Unread it is a ground-state
// operation.
func (s *Scanner) Discard(n int) error {
	if s.InFlight() {
		return ErrInFlight
	}
	if n > len(s.buf.Unread()) {
		n = len(s.buf.Unread())
	}
	s.buf.ConsumeMany(n)
	s.buf.DropToken()
	return nil
}

// Reset discards all buffered bytes and any in-flight state. Meant for
// connection-level recovery after ErrUnreadable.
func (s *Scanner) Reset() {
	s.machine.Reset()
	s.utf8.Reset()
	s.buf.Reset()
	s.logger.Debug("scanner reset")
}

// ReadToken produces exactly one token from the source.
//
// A zero-byte read with nothing to classify returns ErrNoData; the same
// timeout with a sequence in flight also returns ErrNoData but keeps the
// partial sequence, and the next call resumes it. Classification errors
// reset the automaton locally and the stream stays usable; only
// ErrUnreadable is fatal to the connection.
func (s *Scanner) ReadToken() (Token, error) {
	if s.InFlight() {
		return s.scanSequence()
	}

	// The previous token is dead by contract, release its bytes.
	s.buf.DropToken()

	for {
		if !s.buf.HasUnread() {
			n, err := s.fill()
			if err != nil {
				return Token{}, err
			}
			if n == 0 {
				return Token{}, ErrNoData
			}
			continue
		}

		c := s.buf.Peek()
		tr := s.machine.Peek(c)
		switch tr.Action {
		case parser.ActionPrint:
			return s.scanText()

		case parser.ActionExecute:
			s.machine.Next(c)
			s.buf.Consume()
			s.buf.StartToken()
			return controlToken(c), nil

		case parser.ActionESCDispatch:
			// 8-bit single shift, complete on its own.
			s.machine.Next(c)
			s.buf.Consume()
			s.buf.StartToken()
			return s.dispatchESC(c), nil

		case parser.ActionStart:
			return s.scanSequence()

		default:
			utils.Assert(false, "unexpected ground action")
		}
	}
}

// scanText accumulates a maximal run of printable characters. The run
// ends at the first byte the machine does not classify as printable, or
// at a timeout once at least one character is complete. A partial UTF-8
// tail is never consumed; it stays buffered and is re-decoded when more
// bytes arrive.
func (s *Scanner) scanText() (Token, error) {
	s.buf.StartToken()
	s.utf8.Reset()

	for {
		window := s.buf.Unread()
		good := 0
		i := 0
		boundary := false

	decode:
		for i < len(window) {
			c := window[i]
			if s.utf8.AtBoundary() {
				if tr := s.machine.Peek(c); tr.Action != parser.ActionPrint {
					boundary = true
					break decode
				}
			}
			_, status, consumed := s.utf8.Next(c)
			switch status {
			case UTF8Accept:
				i++
				good = i
			case UTF8More:
				i++
			case UTF8Reject:
				s.buf.ConsumeMany(good)
				s.buf.RetainMany(good)
				if s.buf.TokenLen() > 0 {
					// Emit the completed characters now; the malformed
					// bytes are still unread and the next call reports
					// them.
					return textToken(s.buf.Token()), nil
				}
				skip := i - good
				if consumed {
					skip++
				}
				s.buf.ConsumeMany(skip)
				s.recover()
				return Token{}, ErrMalformedUtf8
			}
		}

		s.buf.ConsumeMany(good)
		s.buf.RetainMany(good)

		if boundary {
			utils.Assert(s.buf.TokenLen() > 0, "empty text token at boundary")
			return textToken(s.buf.Token()), nil
		}

		// Window exhausted; an incomplete character may trail, left
		// unread for re-decoding.
		n, err := s.fill()
		if err != nil {
			if errors.Is(err, ErrOutOfMemory) && s.buf.TokenLen() > 0 {
				// A text run longer than the buffer splits.
				return textToken(s.buf.Token()), nil
			}
			return Token{}, err
		}
		if n == 0 {
			if s.buf.TokenLen() > 0 {
				return textToken(s.buf.Token()), nil
			}
			return Token{}, ErrNoData
		}
		s.utf8.Reset()
	}
}

// scanSequence drives the automaton until the sequence in flight
// dispatches or aborts.
func (s *Scanner) scanSequence() (Token, error) {
	for {
		if !s.buf.HasUnread() {
			n, err := s.fill()
			if err != nil {
				if errors.Is(err, ErrOutOfMemory) {
					s.logger.Warn(
						"sequence exceeds buffer capacity, dropping",
						"capacity", s.buf.Capacity(),
					)
					s.recover()
					return Token{}, ErrPathologicalSequence
				}
				return Token{}, err
			}
			if n == 0 {
				// The partial sequence stays in flight; the caller
				// retries once the source has data again.
				return Token{}, ErrNoData
			}
			continue
		}

		c := s.buf.Peek()
		tr := s.machine.Next(c)
		if tr.Action.Consumes() {
			s.buf.Consume()
		}

		switch tr.Action {
		case parser.ActionNone, parser.ActionIgnore:

		case parser.ActionStart:
			s.begin(tr.State, c)

		case parser.ActionCollect:
			s.buf.Retain()

		case parser.ActionESCDispatch:
			return s.dispatchESC(c), nil

		case parser.ActionCSIDispatch:
			s.buf.Retain()
			return sequenceToken(s.pending, s.buf.Token(), 0), nil

		case parser.ActionStringDispatch:
			term := ansi.C1.ST
			if c == ansi.C0.BEL {
				term = ansi.C0.BEL
			}
			return sequenceToken(s.pending, s.buf.Token(), term), nil

		case parser.ActionAbortSequence:
			s.logger.Debug("sequence aborted", "byte", ansi.String(c))
			s.recover()
			return Token{}, ErrMalformedSequence

		case parser.ActionAbortString:
			s.logger.Debug("string terminated abnormally", "byte", ansi.String(c))
			s.recover()
			return Token{}, ErrBadSequence

		default:
			utils.Assert(false, "unexpected action in sequence")
		}
	}
}

// begin records the family of a newly introduced sequence and opens its
// token region. The introducer bytes are consumed, never retained.
func (s *Scanner) begin(state parser.State, c uint8) {
	s.buf.StartToken()
	switch state {
	case parser.StateEscape:
		s.pending = ControlEscape
	case parser.StateCSIEntry:
		s.pending = ControlCsi
	case parser.StateOSCString:
		s.pending = ControlOsc
	case parser.StateDCSEntry:
		s.pending = ControlDcs
	case parser.StateSosPmApcString:
		switch c {
		case 'X', ansi.C1.SOS:
			s.pending = ControlSos
		case '^', ansi.C1.PM:
			s.pending = ControlPm
		default:
			s.pending = ControlApc
		}
	default:
		utils.Assert(false, "start into unexpected state")
	}
}

// dispatchESC completes a two-byte escape or a single shift on byte c.
func (s *Scanner) dispatchESC(c uint8) Token {
	switch c {
	case 'N', ansi.C1.SS2:
		return sequenceToken(ControlSs2, s.buf.Token(), 0)
	case 'O', ansi.C1.SS3:
		return sequenceToken(ControlSs3, s.buf.Token(), 0)
	default:
		s.buf.Retain()
		return sequenceToken(ControlEscape, s.buf.Token(), 0)
	}
}

// recover handles a local classification error: the automaton returns to
// ground and the retained payload is dropped, leaving unread bytes and
// the stream usable.
func (s *Scanner) recover() {
	s.machine.Reset()
	s.utf8.Reset()
	s.buf.DropToken()
}

// fill reads once from the source. Interrupted reads are retried
// transparently; a deadline expiry and a bare EOF both count as a
// timeout; any other failure wraps as ErrUnreadable.
func (s *Scanner) fill() (int, error) {
	for {
		n, err := s.buf.Fill(s.src)
		switch {
		case err == nil:
			return n, nil
		case errors.Is(err, ErrOutOfMemory):
			return 0, err
		case errors.Is(err, syscall.EINTR):
			continue
		case errors.Is(err, os.ErrDeadlineExceeded):
			return n, nil
		case errors.Is(err, io.EOF):
			return n, nil
		default:
			return n, &Error{Kind: KindUnreadable, Cause: err}
		}
	}
}
