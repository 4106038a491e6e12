package osc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hnimtadd/scanio/terminal/scan"
)

// Reply is the decoded form of an operating system command, as emitted
// by a terminal answering a query: a numeric selector and the data after
// the first semicolon.
type Reply struct {
	Selector int
	Data     string
}

func (r *Reply) String() string {
	return fmt.Sprintf("OSC %d %q", r.Selector, r.Data)
}

// Parse decodes a complete OSC token. It reports scan.ErrNotASequence
// and scan.ErrBadControl from the token accessors, and
// scan.ErrBadSequence when the payload has no numeric selector.
func Parse(tok scan.Token) (*Reply, error) {
	payload, err := tok.SequencePayload(scan.ControlOsc)
	if err != nil {
		return nil, err
	}

	sel, data, _ := strings.Cut(string(payload), ";")
	n, err := strconv.Atoi(sel)
	if err != nil || n < 0 {
		return nil, scan.ErrBadSequence
	}
	return &Reply{Selector: n, Data: data}, nil
}

// Color extracts the color a reply carries. OSC 10, 11 and 12 replies
// carry the spec directly; OSC 4 replies prefix it with the palette
// index.
func (r *Reply) Color() (colorful.Color, error) {
	data := r.Data
	switch r.Selector {
	case 4:
		_, spec, found := strings.Cut(data, ";")
		if !found {
			return colorful.Color{}, fmt.Errorf("osc 4 reply %q has no color spec", data)
		}
		data = spec
	case 10, 11, 12:
	default:
		return colorful.Color{}, fmt.Errorf("osc %d reply carries no color", r.Selector)
	}
	return ParseColor(data)
}

// PaletteIndex returns the palette entry an OSC 4 reply describes.
func (r *Reply) PaletteIndex() (int, error) {
	if r.Selector != 4 {
		return 0, fmt.Errorf("osc %d reply has no palette index", r.Selector)
	}
	idx, _, _ := strings.Cut(r.Data, ";")
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("invalid palette index %q", idx)
	}
	return n, nil
}

// ParseColor decodes an X11 color specification as terminals emit them:
// rgb:<red>/<green>/<blue> with one to four hex digits per channel, each
// channel scaled by its own width, or a #RRGGBB hex form.
func ParseColor(spec string) (colorful.Color, error) {
	if strings.HasPrefix(spec, "#") {
		return colorful.Hex(spec)
	}

	raw, found := strings.CutPrefix(spec, "rgb:")
	if !found {
		return colorful.Color{}, fmt.Errorf("unsupported color spec %q", spec)
	}
	channels := strings.Split(raw, "/")
	if len(channels) != 3 {
		return colorful.Color{}, fmt.Errorf("color spec %q does not have three channels", spec)
	}

	var value [3]float64
	for i, ch := range channels {
		if len(ch) < 1 || len(ch) > 4 {
			return colorful.Color{}, fmt.Errorf("color channel %q out of range", ch)
		}
		n, err := strconv.ParseUint(ch, 16, 16)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("color channel %q is not hex: %w", ch, err)
		}
		// Each channel scales by its own width: "f" and "ffff" both
		// mean full intensity.
		value[i] = float64(n) / float64(uint64(1)<<(4*len(ch))-1)
	}
	return colorful.Color{R: value[0], G: value[1], B: value[2]}, nil
}
