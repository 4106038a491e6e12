package parser

// VT-series parser for escape and control sequences.
//
// The transition table is a pure function over (state, byte); the parser
// itself carries nothing but the current state. Payload accumulation is
// the caller's concern, driven by the returned action. Based on the state
// machine described on vt100.net: https://vt100.net/emu/dec_ansi_parser
type Parser struct {
	State State

	table *parserTable
}

func NewParser() *Parser {
	return &Parser{
		State: StateGround,
		table: table,
	}
}

// Next classifies byte c, advances the state, and returns the transition
// taken. Whether c was consumed is a property of the returned action; the
// abort actions classify c without consuming it, and the caller is
// expected to present the byte again from the ground state.
func (p *Parser) Next(c uint8) Transition {
	t := p.table[c][p.State]
	p.State = t.State
	return t
}

// Peek returns the transition Next would take for c without advancing.
func (p *Parser) Peek(c uint8) Transition {
	return p.table[c][p.State]
}

// Reset returns the machine to the ground state, discarding any sequence
// in flight.
func (p *Parser) Reset() {
	p.State = StateGround
}
