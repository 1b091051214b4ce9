package jpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCanonicalCodeGeneration checks the canonical property SPEC_FULL.md §8
// names: codes of a given length are a contiguous range, and the base code
// of length k+1 is twice (base_k + count_k).
func TestCanonicalCodeGeneration(t *testing.T) {
	var counts [16]int
	counts[0] = 2 // two 1-bit codes
	counts[1] = 1 // one 2-bit code
	counts[2] = 2 // two 3-bit codes
	symbols := []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xA4}

	tbl, err := buildHuffmanTable(counts, symbols)
	require.NoError(t, err)

	require.Equal(t, 0, tbl.offsets[0])
	require.Equal(t, len(symbols), tbl.offsets[16])

	require.Equal(t, []uint32{0, 1}, tbl.codes[:2])
	// base of length 2 = 2*(0+2) = 4
	require.Equal(t, uint32(4), tbl.codes[2])
	// base of length 3 = 2*(4+1) = 10
	require.Equal(t, []uint32{10, 11}, tbl.codes[3:5])
}

func TestHuffmanTableTooManySymbols(t *testing.T) {
	var counts [16]int
	counts[15] = maxHuffmanSymbols + 1
	symbols := make([]byte, maxHuffmanSymbols+1)
	_, err := buildHuffmanTable(counts, symbols)
	require.Equal(t, DHTInvalidSymbolsLength, err)
}

func TestHuffmanNextSymbolRoundTrip(t *testing.T) {
	var counts [16]int
	counts[0] = 1 // symbol 0x05 at code "0"
	counts[1] = 1 // symbol 0x0A at code "10"
	symbols := []byte{0x05, 0x0A}
	tbl, err := buildHuffmanTable(counts, symbols)
	require.NoError(t, err)

	r := newBitReader([]byte{0b10000000})
	sym, err := tbl.nextSymbol(r)
	require.NoError(t, err)
	require.Equal(t, byte(0x0A), sym)
}

func TestHuffmanSymbolNotFound(t *testing.T) {
	var counts [16]int
	counts[0] = 1
	symbols := []byte{0x00}
	tbl, err := buildHuffmanTable(counts, symbols)
	require.NoError(t, err)
	// bits are all 1s; the only valid code is "0", so this never matches.
	r := newBitReader([]byte{0xFF, 0xFF})
	_, err = tbl.nextSymbol(r)
	require.Equal(t, HuffmanSymbolNotFound, err)
}

func TestExtendSigned(t *testing.T) {
	cases := []struct {
		length uint
		v      uint32
		want   int32
	}{
		{0, 0, 0},
		{1, 0, -1},
		{1, 1, 1},
		{3, 0, -7},
		{3, 3, -4},
		{3, 4, 4},
		{3, 7, 7},
	}
	for _, c := range cases {
		require.Equal(t, c.want, extendSigned(c.length, c.v))
	}
}
