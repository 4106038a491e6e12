package theme_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/scanio/terminal/scan"
	"github.com/hnimtadd/scanio/terminal/sequences/osc"
	"github.com/hnimtadd/scanio/terminal/theme"
)

func readReply(t *testing.T, input string) *osc.Reply {
	t.Helper()
	s := scan.NewScanner(bytes.NewReader([]byte(input)), scan.Options{})
	tok, err := s.ReadToken()
	require.NoError(t, err)
	r, err := osc.Parse(tok)
	require.NoError(t, err)
	return r
}

func TestFromReplies(t *testing.T) {
	fg := readReply(t, "\x1b]10;rgb:ffff/ffff/ffff\x07")
	bg := readReply(t, "\x1b]11;rgb:0000/0000/0000\x07")

	th, err := theme.FromReplies(fg, bg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, th.Foreground.R, 0.001)
	assert.InDelta(t, 0.0, th.Background.R, 0.001)
}

func TestFromRepliesRejectsSwappedSelectors(t *testing.T) {
	fg := readReply(t, "\x1b]10;rgb:ffff/ffff/ffff\x07")
	bg := readReply(t, "\x1b]11;rgb:0000/0000/0000\x07")

	_, err := theme.FromReplies(bg, fg)
	assert.Error(t, err)
}

func TestFromRepliesRejectsBadColor(t *testing.T) {
	fg := readReply(t, "\x1b]10;nonsense\x07")
	bg := readReply(t, "\x1b]11;rgb:0000/0000/0000\x07")

	_, err := theme.FromReplies(fg, bg)
	assert.Error(t, err)
}

func TestIsDark(t *testing.T) {
	fg := readReply(t, "\x1b]10;rgb:ffff/ffff/ffff\x07")
	bg := readReply(t, "\x1b]11;rgb:0000/0000/0000\x07")

	dark, err := theme.FromReplies(fg, bg)
	require.NoError(t, err)
	assert.True(t, dark.IsDark())

	fg = readReply(t, "\x1b]10;rgb:0000/0000/0000\x07")
	bg = readReply(t, "\x1b]11;rgb:ffff/ffff/ffff\x07")

	light, err := theme.FromReplies(fg, bg)
	require.NoError(t, err)
	assert.False(t, light.IsDark())
}

func TestHash(t *testing.T) {
	fg := readReply(t, "\x1b]10;rgb:ffff/ffff/ffff\x07")
	bg := readReply(t, "\x1b]11;rgb:0000/0000/0000\x07")

	a, err := theme.FromReplies(fg, bg)
	require.NoError(t, err)
	b, err := theme.FromReplies(fg, bg)
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())

	bg = readReply(t, "\x1b]11;rgb:1e1e/1e1e/1e1e\x07")
	c, err := theme.FromReplies(fg, bg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestQueryBytes(t *testing.T) {
	// the queries round-trip through the token layer unchanged
	for _, q := range [][]byte{
		theme.QueryForeground,
		theme.QueryBackground,
		theme.QueryCursorPosition,
	} {
		s := scan.NewScanner(bytes.NewReader(q), scan.Options{})
		tok, err := s.ReadToken()
		require.NoError(t, err)
		assert.Equal(t, q, tok.AppendBytes(nil))
	}
}
