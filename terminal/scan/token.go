package scan

import (
	"fmt"

	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/unicode"

	"github.com/hnimtadd/scanio/terminal/ansi"
)

// Control tags the family of an escape sequence and fixes its
// introducing bytes.
type Control int

const (
	// ControlEscape is a two-byte escape sequence; the payload is the
	// final byte.
	ControlEscape Control = iota
	ControlCsi
	ControlOsc
	ControlDcs
	ControlSos
	ControlPm
	ControlApc
	ControlSs2
	ControlSs3
)

func (c Control) String() string {
	switch c {
	case ControlEscape:
		return "Escape"
	case ControlCsi:
		return "Csi"
	case ControlOsc:
		return "Osc"
	case ControlDcs:
		return "Dcs"
	case ControlSos:
		return "Sos"
	case ControlPm:
		return "Pm"
	case ControlApc:
		return "Apc"
	case ControlSs2:
		return "Ss2"
	case ControlSs3:
		return "Ss3"
	default:
		return "Unknown"
	}
}

// Introducer returns the canonical 7-bit introducing bytes.
func (c Control) Introducer() []byte {
	esc := ansi.C0.ESC
	switch c {
	case ControlEscape:
		return []byte{esc}
	case ControlCsi:
		return []byte{esc, '['}
	case ControlOsc:
		return []byte{esc, ']'}
	case ControlDcs:
		return []byte{esc, 'P'}
	case ControlSos:
		return []byte{esc, 'X'}
	case ControlPm:
		return []byte{esc, '^'}
	case ControlApc:
		return []byte{esc, '_'}
	case ControlSs2:
		return []byte{esc, 'N'}
	case ControlSs3:
		return []byte{esc, 'O'}
	default:
		return nil
	}
}

// HasStringPayload reports whether sequences of this family carry a
// free-form payload closed by a string terminator.
func (c Control) HasStringPayload() bool {
	switch c {
	case ControlOsc, ControlDcs, ControlSos, ControlPm, ControlApc:
		return true
	default:
		return false
	}
}

// TokenKind discriminates the scanner's output unit.
type TokenKind int

const (
	// TokenText is a maximal run of printable characters.
	TokenText TokenKind = iota
	// TokenControl is a single C0 or C1 byte that does not begin a
	// recognized sequence.
	TokenControl
	// TokenSequence is a complete escape sequence.
	TokenSequence
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "Text"
	case TokenControl:
		return "Control"
	case TokenSequence:
		return "Sequence"
	default:
		return "Unknown"
	}
}

// Token is one classified unit of the byte stream.
//
// A token's payload aliases the scanner's buffer and is valid only until
// the next call that mutates the scanner, exactly like the slice returned
// by bufio.Scanner.Bytes. Callers that hold tokens across reads must copy.
type Token struct {
	kind    TokenKind
	control Control // sequence family, TokenSequence only
	code    byte    // the control byte, TokenControl only
	payload []byte  // text bytes or sequence payload

	// terminator records how a string sequence was closed: BEL for a
	// 0x07 close, ST for ESC backslash, zero otherwise.
	terminator byte
}

func textToken(payload []byte) Token {
	return Token{kind: TokenText, payload: payload}
}

func controlToken(code byte) Token {
	return Token{kind: TokenControl, code: code}
}

func sequenceToken(control Control, payload []byte, terminator byte) Token {
	return Token{
		kind:       TokenSequence,
		control:    control,
		payload:    payload,
		terminator: terminator,
	}
}

func (t Token) Kind() TokenKind { return t.kind }

// Payload returns the token's bytes: the text run for a text token, the
// sequence payload for a sequence token. For CSI and two-byte escapes the
// final byte is the last payload byte; for string sequences the payload
// excludes introducer and terminator.
func (t Token) Payload() []byte { return t.payload }

// Text returns the token's characters. The second result is false for
// control and sequence tokens.
func (t Token) Text() (string, bool) {
	if t.kind != TokenText {
		return "", false
	}
	return string(t.payload), true
}

// ControlByte returns the single control byte of a control token.
func (t Token) ControlByte() (byte, bool) {
	if t.kind != TokenControl {
		return 0, false
	}
	return t.code, true
}

// Sequence returns the family and payload of a sequence token, or
// ErrNotASequence.
func (t Token) Sequence() (Control, []byte, error) {
	if t.kind != TokenSequence {
		return 0, nil, ErrNotASequence
	}
	return t.control, t.payload, nil
}

// SequencePayload returns the payload of a sequence token of the wanted
// family. It reports ErrNotASequence for non-sequence tokens and
// ErrBadControl for a family mismatch.
func (t Token) SequencePayload(want Control) ([]byte, error) {
	if t.kind != TokenSequence {
		return nil, ErrNotASequence
	}
	if t.control != want {
		return nil, ErrBadControl
	}
	return t.payload, nil
}

// Final returns the final byte of a CSI or two-byte escape sequence.
func (t Token) Final() (byte, error) {
	if t.kind != TokenSequence {
		return 0, ErrNotASequence
	}
	switch t.control {
	case ControlCsi, ControlEscape:
		if len(t.payload) == 0 {
			return 0, ErrBadSequence
		}
		return t.payload[len(t.payload)-1], nil
	default:
		return 0, ErrBadControl
	}
}

// Terminator returns the byte that closed a string sequence: BEL, ST, or
// zero for sequence families without a string payload.
func (t Token) Terminator() byte { return t.terminator }

// AppendBytes reconstructs the token's original bytes onto dst. Sequences
// introduced in 8-bit form come back in the canonical 7-bit form.
func (t Token) AppendBytes(dst []byte) []byte {
	switch t.kind {
	case TokenText:
		return append(dst, t.payload...)
	case TokenControl:
		return append(dst, t.code)
	case TokenSequence:
		dst = append(dst, t.control.Introducer()...)
		dst = append(dst, t.payload...)
		switch t.terminator {
		case ansi.C0.BEL:
			dst = append(dst, ansi.C0.BEL)
		case ansi.C1.ST:
			dst = append(dst, ansi.C0.ESC, '\\')
		}
		return dst
	default:
		return dst
	}
}

// Width returns the display width of a text token in terminal cells, and
// zero for anything else.
func (t Token) Width() int {
	if t.kind != TokenText {
		return 0
	}
	return dw.StringWidth(string(t.payload))
}

// DisplayString renders the token printably for logs; invalid bytes are
// replaced, never passed through.
func (t Token) DisplayString() string {
	switch t.kind {
	case TokenText:
		decoded, err := unicode.UTF8.NewDecoder().Bytes(t.payload)
		if err != nil {
			return fmt.Sprintf("%q", t.payload)
		}
		return string(decoded)
	case TokenControl:
		return ansi.String(t.code)
	case TokenSequence:
		return fmt.Sprintf("%s %q", t.control, t.payload)
	default:
		return "invalid token"
	}
}

func (t Token) String() string {
	switch t.kind {
	case TokenText:
		return fmt.Sprintf("Text(%q)", t.payload)
	case TokenControl:
		return fmt.Sprintf("Control(%s)", ansi.String(t.code))
	case TokenSequence:
		return fmt.Sprintf("Sequence(%s, %q)", t.control, t.payload)
	default:
		return "Token(invalid)"
	}
}
