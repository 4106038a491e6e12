package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCIIUTF8Decoder(t *testing.T) {
	d := NewUTF8Decoder()
	out := make([]byte, 13)
	for i, b := range []byte("Hello, World!") {
		cp, status, consumed := d.Next(b)
		assert.Equal(t, UTF8Accept, status)
		assert.True(t, consumed)
		out[i] = byte(cp)
	}
	assert.Equal(t, "Hello, World!", string(out))
}

func TestWellFormedUTF8Decoder(t *testing.T) {
	d := NewUTF8Decoder()
	out := []uint32{}

	for _, b := range []byte("😄✤ÁA") {
		cp, status, consumed := d.Next(b)
		assert.True(t, consumed)
		assert.NotEqual(t, UTF8Reject, status)
		if status == UTF8Accept {
			out = append(out, cp)
		}
	}
	assert.EqualValues(t, []uint32{0x1F604, 0x2724, 0xC1, 0x41}, out)
}

func TestUTF8DecoderRejects(t *testing.T) {
	tcs := []struct {
		name  string
		input []byte
		// index of the byte on which rejection is reported and
		// whether that byte is consumed
		rejectAt int
		consumed bool
	}{
		{
			name:     "bad continuation after 2-byte lead",
			input:    []byte{0xC2, 0x41},
			rejectAt: 1,
			consumed: false,
		},
		{
			name:     "continuation out of range after lead",
			input:    []byte{0xC2, 0xC0},
			rejectAt: 1,
			consumed: false,
		},
		{
			name:     "overlong 0xC0",
			input:    []byte{0xC0},
			rejectAt: 0,
			consumed: true,
		},
		{
			name:     "overlong 0xC1",
			input:    []byte{0xC1},
			rejectAt: 0,
			consumed: true,
		},
		{
			name:     "lead above 0xF4",
			input:    []byte{0xF5},
			rejectAt: 0,
			consumed: true,
		},
		{
			name:     "stray continuation",
			input:    []byte{0x80},
			rejectAt: 0,
			consumed: true,
		},
		{
			name:     "encoded surrogate",
			input:    []byte{0xED, 0xA0, 0x80},
			rejectAt: 1,
			consumed: false,
		},
		{
			name:     "overlong 3-byte encoding",
			input:    []byte{0xE0, 0x80, 0x80},
			rejectAt: 1,
			consumed: false,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := NewUTF8Decoder()
			for i, b := range tc.input {
				_, status, consumed := d.Next(b)
				if i < tc.rejectAt {
					assert.Equal(t, UTF8More, status, "byte %d", i)
					continue
				}
				assert.Equal(t, UTF8Reject, status)
				assert.Equal(t, tc.consumed, consumed)
				// rejection resets to the boundary state
				assert.True(t, d.AtBoundary())
				break
			}
		})
	}
}

func TestUTF8DecoderResynchronizes(t *testing.T) {
	d := NewUTF8Decoder()

	_, status, _ := d.Next(0xC2)
	assert.Equal(t, UTF8More, status)
	_, status, consumed := d.Next('A')
	assert.Equal(t, UTF8Reject, status)
	assert.False(t, consumed)

	// the rejected byte decodes cleanly when presented again
	cp, status, consumed := d.Next('A')
	assert.Equal(t, UTF8Accept, status)
	assert.True(t, consumed)
	assert.EqualValues(t, 'A', cp)
}
