package scanio

import (
	"github.com/hnimtadd/scanio/terminal/scan"
)

// Token handlers for Console.Pump. A handler only has to implement the
// callbacks it cares about; tokens without a matching callback are
// logged and dropped.

// TextHandler receives printable text runs.
type TextHandler interface {
	Text(s string)
}

// ControlHandler receives single C0/C1 control bytes.
type ControlHandler interface {
	Control(c byte)
}

// SequenceHandler receives complete escape sequences with their raw
// payload; interpreting the payload is the handler's concern.
type SequenceHandler interface {
	Sequence(control scan.Control, payload []byte)
}

func (c *Console) dispatch(tok scan.Token, handler any) {
	switch tok.Kind() {
	case scan.TokenText:
		if h, implemented := handler.(TextHandler); implemented {
			text, _ := tok.Text()
			h.Text(text)
			return
		}

	case scan.TokenControl:
		if h, implemented := handler.(ControlHandler); implemented {
			code, _ := tok.ControlByte()
			h.Control(code)
			return
		}

	case scan.TokenSequence:
		if h, implemented := handler.(SequenceHandler); implemented {
			control, payload, _ := tok.Sequence()
			h.Sequence(control, payload)
			return
		}
	}
	c.logger.Warn("unhandled token", "token", tok.DisplayString())
}
