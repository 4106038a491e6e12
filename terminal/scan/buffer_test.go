package scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillFrom(t *testing.T, b *Buffer, data []byte) {
	t.Helper()
	n, err := b.Fill(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, len(data), n)
}

func TestBufferConsumeAndRetain(t *testing.T) {
	b := NewBuffer(MinCapacity)
	fillFrom(t, b, []byte("\x1b[31m"))

	assert.True(t, b.HasUnread())
	assert.Equal(t, byte(0x1B), b.Peek())

	// introducer bytes are consumed but never retained
	b.Consume()
	b.Consume()
	b.StartToken()

	for i := 0; i < 3; i++ {
		b.Consume()
		b.Retain()
	}
	assert.Equal(t, []byte("31m"), b.Token())
	assert.Equal(t, 3, b.TokenLen())
	assert.False(t, b.HasUnread())
}

func TestBufferRetainAcrossGap(t *testing.T) {
	b := NewBuffer(MinCapacity)
	fillFrom(t, b, []byte("ab--cd"))

	b.StartToken()
	b.ConsumeMany(2)
	b.RetainMany(2)

	// skip the gap without retaining, then retain past it
	b.ConsumeMany(2)
	b.ConsumeMany(2)
	b.RetainMany(2)

	assert.Equal(t, []byte("abcd"), b.Token())
}

func TestBufferDropToken(t *testing.T) {
	b := NewBuffer(MinCapacity)
	fillFrom(t, b, []byte("xyz!"))

	b.StartToken()
	b.ConsumeMany(3)
	b.RetainMany(3)
	require.Equal(t, 3, b.TokenLen())

	b.DropToken()
	assert.Equal(t, 0, b.TokenLen())
	// unread bytes are untouched
	assert.Equal(t, []byte("!"), b.Unread())
}

func TestBufferBackshift(t *testing.T) {
	b := NewBuffer(MinCapacity)
	fillFrom(t, b, []byte("0123tok??unread"))

	b.ConsumeMany(4) // emitted, reclaimable
	b.StartToken()
	b.ConsumeMany(3)
	b.RetainMany(3)
	b.ConsumeMany(2) // classified gap, reclaimable

	b.Backshift()
	assert.Equal(t, []byte("tok"), b.Token())
	assert.Equal(t, []byte("unread"), b.Unread())

	// the reclaimed space accepts another fill
	fillFrom(t, b, []byte("+more"))
	assert.Equal(t, []byte("unread+more"), b.Unread())
}

func TestBufferFillBackshiftsWhenFull(t *testing.T) {
	b := NewBuffer(MinCapacity)
	fillFrom(t, b, bytes.Repeat([]byte{'a'}, MinCapacity))

	// consume everything without retaining; the next fill must reclaim
	b.ConsumeMany(MinCapacity)
	b.StartToken()
	fillFrom(t, b, []byte("fresh"))
	assert.Equal(t, []byte("fresh"), b.Unread())
}

func TestBufferFillOutOfMemory(t *testing.T) {
	b := NewBuffer(MinCapacity)
	fillFrom(t, b, bytes.Repeat([]byte{'x'}, MinCapacity))

	b.StartToken()
	b.ConsumeMany(MinCapacity)
	b.RetainMany(MinCapacity)

	// the token region alone occupies the whole store
	_, err := b.Fill(bytes.NewReader([]byte("overflow")))
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.True(t, b.IsExhausted())

	b.Reset()
	assert.False(t, b.IsExhausted())
	fillFrom(t, b, []byte("ok"))
	assert.Equal(t, []byte("ok"), b.Unread())
}

func TestBufferMinimumCapacity(t *testing.T) {
	b := NewBuffer(1)
	assert.Equal(t, MinCapacity, b.Capacity())
}
