package jpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReaderMSBFirst(t *testing.T) {
	r := newBitReader([]byte{0b10110001})
	want := []uint32{1, 0, 1, 1, 0, 0, 0, 1}
	for i, w := range want {
		bit, ok := r.readBit()
		require.Truef(t, ok, "bit %d: unexpected end of stream", i)
		require.Equalf(t, w, bit, "bit %d", i)
	}
	_, ok := r.readBit()
	require.False(t, ok, "expected end of stream after 8 bits")
}

func TestBitReaderReadLength(t *testing.T) {
	r := newBitReader([]byte{0xFF, 0x00})
	v, ok := r.readLength(12)
	require.True(t, ok)
	require.Equal(t, uint32(0xFF0), v)
}

func TestBitReaderReadLengthZero(t *testing.T) {
	r := newBitReader(nil)
	v, ok := r.readLength(0)
	require.True(t, ok, "reading 0 bits should always succeed")
	require.Equal(t, uint32(0), v)
}

func TestBitReaderAlign(t *testing.T) {
	r := newBitReader([]byte{0xFF, 0x42})
	_, _ = r.readBit()
	_, _ = r.readBit()
	_, _ = r.readBit()
	r.align()
	require.Equal(t, 1, r.byteIdx, "align did not advance to next byte")
	require.Equal(t, uint(0), r.bitIdx)

	v, ok := r.readLength(8)
	require.True(t, ok)
	require.Equal(t, uint32(0x42), v)
}

func TestBitReaderAlignNoOpWhenAligned(t *testing.T) {
	r := newBitReader([]byte{0x01, 0x02})
	r.align()
	require.Equal(t, 0, r.byteIdx, "align should be a no-op on an already-aligned cursor")
}

func TestBitReaderPastEnd(t *testing.T) {
	r := newBitReader([]byte{0x00})
	_, ok := r.readLength(9)
	require.False(t, ok, "reading past the buffer should report end of stream")
}
