package scan

import (
	"github.com/hnimtadd/scanio/terminal/utils"
)

// Buffer is a fixed-capacity byte store with four monotonic cursors
// satisfying tokenStart <= tokenEnd <= cursor <= filled <= cap:
//
//	[0, tokenStart)       already emitted, reclaimable
//	[tokenStart, tokenEnd) bytes retained for the token in flight
//	[tokenEnd, cursor)     classified but uninteresting, reclaimable
//	[cursor, filled)       read but not yet classified
//	[filled, cap)          free
//
// The token region trails the cursor when classified bytes are consumed
// without being retained, so retention is a copy of at most the trailing
// delta, never of the unread region.
type Buffer struct {
	data       []byte
	tokenStart int
	tokenEnd   int
	cursor     int
	filled     int
}

const (
	// MinCapacity bounds how small a buffer may be; anything smaller
	// cannot hold a useful sequence.
	MinCapacity = 16

	// DefaultCapacity bounds how long a sequence may grow before the
	// scanner reports it as pathological.
	DefaultCapacity = 1 << 10
)

func NewBuffer(capacity int) *Buffer {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Buffer{data: make([]byte, capacity)}
}

func (b *Buffer) check() {
	utils.Assert(
		0 <= b.tokenStart &&
			b.tokenStart <= b.tokenEnd &&
			b.tokenEnd <= b.cursor &&
			b.cursor <= b.filled &&
			b.filled <= len(b.data),
		"buffer cursor invariant violated",
	)
}

// Capacity returns the fixed size of the store.
func (b *Buffer) Capacity() int { return len(b.data) }

// HasUnread reports whether classification can proceed without a fill.
func (b *Buffer) HasUnread() bool { return b.cursor < b.filled }

// Unread returns the read-but-unclassified region.
func (b *Buffer) Unread() []byte { return b.data[b.cursor:b.filled] }

// Peek returns the next unread byte.
func (b *Buffer) Peek() byte {
	utils.Assert(b.cursor < b.filled, "peek past fill")
	return b.data[b.cursor]
}

// Consume classifies the next unread byte without retaining it.
func (b *Buffer) Consume() {
	utils.Assert(b.cursor < b.filled, "consume past fill")
	b.cursor++
	b.check()
}

// ConsumeMany classifies the next n unread bytes without retaining them.
func (b *Buffer) ConsumeMany(n int) {
	utils.Assert(n >= 0 && b.cursor+n <= b.filled, "consume past fill")
	b.cursor += n
	b.check()
}

// Retain copies the most recently consumed byte into the token region.
// When the token region trails the cursor only the delta moves.
func (b *Buffer) Retain() {
	utils.Assert(b.tokenEnd < b.cursor, "retain before consume")
	if b.tokenEnd != b.cursor-1 {
		b.data[b.tokenEnd] = b.data[b.cursor-1]
	}
	b.tokenEnd++
	b.check()
}

// RetainMany copies the n most recently consumed bytes into the token
// region.
func (b *Buffer) RetainMany(n int) {
	utils.Assert(n >= 0 && b.tokenEnd+n <= b.cursor, "retain before consume")
	if n == 0 {
		return
	}
	if b.tokenEnd != b.cursor-n {
		copy(b.data[b.tokenEnd:], b.data[b.cursor-n:b.cursor])
	}
	b.tokenEnd += n
	b.check()
}

// StartToken begins a new token at the current cursor, releasing any
// previously retained bytes for reclamation.
func (b *Buffer) StartToken() {
	b.tokenStart = b.cursor
	b.tokenEnd = b.cursor
	b.check()
}

// Token returns the retained byte range. The slice aliases the store and
// is invalidated by the next backshift or token start.
func (b *Buffer) Token() []byte {
	return b.data[b.tokenStart:b.tokenEnd]
}

// TokenLen returns the number of retained bytes.
func (b *Buffer) TokenLen() int { return b.tokenEnd - b.tokenStart }

// DropToken discards the retained bytes. Used for error recovery; unread
// bytes are untouched.
func (b *Buffer) DropToken() {
	b.tokenStart = b.cursor
	b.tokenEnd = b.cursor
	b.check()
}

// slack is the number of bytes a backshift would reclaim.
func (b *Buffer) slack() int {
	return b.tokenStart + (b.cursor - b.tokenEnd)
}

// Backshift compacts the store: the token region moves to offset zero and
// the unread region follows immediately after it. Bytes before tokenStart
// and between tokenEnd and cursor are reclaimed; unread bytes are moved,
// never lost.
func (b *Buffer) Backshift() {
	tokenLen := b.tokenEnd - b.tokenStart
	if b.tokenStart > 0 {
		copy(b.data[0:], b.data[b.tokenStart:b.tokenEnd])
	}
	unread := b.filled - b.cursor
	if unread > 0 && b.cursor != tokenLen {
		copy(b.data[tokenLen:], b.data[b.cursor:b.filled])
	}
	b.tokenStart = 0
	b.tokenEnd = tokenLen
	b.cursor = tokenLen
	b.filled = tokenLen + unread
	b.check()
}

// IsExhausted reports that scanning cannot proceed: no unread bytes, no
// backshiftable slack, no free tail. Only a hard reset helps.
func (b *Buffer) IsExhausted() bool {
	return b.cursor == b.filled &&
		b.filled == len(b.data) &&
		b.slack() == 0
}

// Fill performs one read into the free tail, backshifting first when the
// tail is empty and slack exists. A zero count is the source's timeout
// signal, not end of stream. ErrOutOfMemory means the token region alone
// occupies the whole store.
func (b *Buffer) Fill(src Source) (int, error) {
	if b.filled == len(b.data) && b.slack() > 0 {
		b.Backshift()
	}
	if b.filled == len(b.data) {
		return 0, ErrOutOfMemory
	}
	n, err := src.Read(b.data[b.filled:])
	utils.Assert(n >= 0 && b.filled+n <= len(b.data), "source overran fill window")
	b.filled += n
	b.check()
	return n, err
}

// Reset empties the store entirely.
func (b *Buffer) Reset() {
	b.tokenStart = 0
	b.tokenEnd = 0
	b.cursor = 0
	b.filled = 0
}
