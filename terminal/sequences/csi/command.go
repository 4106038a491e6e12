package csi

import (
	"fmt"

	"github.com/hnimtadd/scanio/terminal/scan"
	"github.com/hnimtadd/scanio/terminal/utils"
)

const (
	MaxParams        = 24
	MaxIntermediates = 4
)

// Command is the decoded form of a control sequence. The scanner hands
// back the raw payload with the final byte last; Parse splits it into
// parameters, intermediates and the final byte.
type Command struct {
	Intermediates []uint8
	Params        []uint16

	// ParamsSet marks parameters that were joined to their predecessor
	// with a colon instead of a semicolon.
	ParamsSet *utils.StaticBitSet

	Final uint8
}

func (c Command) String() string {
	return fmt.Sprintf("CSI %v %v %c", c.Intermediates, c.Params, c.Final)
}

// Parse decodes a complete CSI token. It reports scan.ErrNotASequence
// and scan.ErrBadControl from the token accessors, and
// scan.ErrBadSequence for an empty payload.
func Parse(tok scan.Token) (*Command, error) {
	payload, err := tok.SequencePayload(scan.ControlCsi)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, scan.ErrBadSequence
	}

	cmd := &Command{
		Final:     payload[len(payload)-1],
		ParamsSet: utils.NewStaticBitSet(MaxParams),
	}

	var (
		params    [MaxParams]uint16
		paramsIdx int
		acc       uint16
		accIdx    int
	)
	for _, c := range payload[:len(payload)-1] {
		switch {
		case c >= '0' && c <= '9':
			// A numeric value. Add it to the accumulator.
			if accIdx > 0 {
				acc *= 10
				acc += uint16(c - '0')
			} else {
				acc = uint16(c - '0')
			}

			// If the digit count overflows we are out of bounds and
			// stop widening the value.
			nextAccIdx, overflow := utils.AddWithOverflow(accIdx, 1)
			if overflow {
				continue
			}
			accIdx = nextAccIdx

		case c == ';' || c == ':':
			// A separator stores the value and moves on to the next
			// parameter; anything past MaxParams is dropped.
			if paramsIdx >= MaxParams {
				continue
			}
			params[paramsIdx] = acc
			if c == ':' {
				cmd.ParamsSet.Set(paramsIdx)
			}
			paramsIdx++
			acc = 0
			accIdx = 0

		default:
			// Intermediate and private-marker bytes.
			if len(cmd.Intermediates) >= MaxIntermediates {
				continue
			}
			cmd.Intermediates = append(cmd.Intermediates, c)
		}
	}

	// Finalize the trailing parameter if one was accumulating.
	if accIdx > 0 && paramsIdx < MaxParams {
		params[paramsIdx] = acc
		paramsIdx++
	}
	cmd.Params = append([]uint16(nil), params[:paramsIdx]...)

	return cmd, nil
}

// Param returns the parameter at idx, or def when absent or zero. CSI
// parameters treat an omitted value and zero alike.
func (c *Command) Param(idx int, def uint16) uint16 {
	if idx >= len(c.Params) || c.Params[idx] == 0 {
		return def
	}
	return c.Params[idx]
}

// CursorPosition decodes a cursor position report, CSI r ; c R. Rows and
// columns are one-based; omitted values default to 1. A token with a
// different final byte reports scan.ErrBadControl.
func CursorPosition(tok scan.Token) (row, col uint16, err error) {
	cmd, err := Parse(tok)
	if err != nil {
		return 0, 0, err
	}
	if cmd.Final != 'R' || len(cmd.Intermediates) > 0 {
		return 0, 0, scan.ErrBadControl
	}
	if len(cmd.Params) > 2 {
		return 0, 0, scan.ErrBadSequence
	}
	return cmd.Param(0, 1), cmd.Param(1, 1), nil
}
