package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/scanio/terminal/sequences/osc"
	"github.com/hnimtadd/scanio/terminal/utils"
)

// Query bytes a caller writes to its terminal to provoke the replies
// this package decodes.
var (
	QueryForeground     = []byte("\x1b]10;?\x07")
	QueryBackground     = []byte("\x1b]11;?\x07")
	QueryCursorPosition = []byte("\x1b[6n")
)

// Theme is the terminal's queried default colors.
type Theme struct {
	Foreground colorful.Color
	Background colorful.Color
}

// FromReplies builds a Theme from the OSC 10 and OSC 11 replies to
// QueryForeground and QueryBackground.
func FromReplies(fg, bg *osc.Reply) (Theme, error) {
	if fg.Selector != 10 {
		return Theme{}, fmt.Errorf("expected osc 10 reply, got osc %d", fg.Selector)
	}
	if bg.Selector != 11 {
		return Theme{}, fmt.Errorf("expected osc 11 reply, got osc %d", bg.Selector)
	}
	fgColor, err := fg.Color()
	if err != nil {
		return Theme{}, err
	}
	bgColor, err := bg.Color()
	if err != nil {
		return Theme{}, err
	}
	return Theme{Foreground: fgColor, Background: bgColor}, nil
}

// IsDark reports whether the background reads as dark. Luminance splits
// at the midpoint, matching how terminals pick light-on-dark defaults.
func (t Theme) IsDark() bool {
	l, _, _ := t.Background.Luv()
	return l < 0.5
}

// Hash supports cheap change detection between queries: terminals may
// switch themes at any time, and comparing hashes avoids holding the
// previous colors.
func (t Theme) Hash() uint64 {
	hashed, err := hashstructure.Hash(t, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash theme: %v", err))
	return hashed
}
