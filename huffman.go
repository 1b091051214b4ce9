package jpeg

// maxHuffmanSymbols is the baseline cap on the total number of symbols a
// single Huffman table may define (0xA2, ITU-T T.81 Annex C).
const maxHuffmanSymbols = 162

// huffmanTable holds a canonical Huffman code table built from per-length
// symbol counts. The teacher (segment.go, buildTree/hcnode) builds a binary
// decode tree instead; this project keeps the teacher's left-to-right,
// shortest-first construction order but stores it as the canonical
// offsets/symbols/codes arrays the spec calls for, which make nextSymbol a
// linear scan over a narrow range rather than a tree walk.
type huffmanTable struct {
	present bool
	offsets [17]int // offsets[i] = count of symbols with code length <= i
	symbols [maxHuffmanSymbols]byte
	codes   [maxHuffmanSymbols]uint32
}

// buildHuffmanTable constructs a huffmanTable from the 16 per-length symbol
// counts (counts[i] is the number of codes of length i+1) and the flat list
// of symbols in length order. It implements the canonical code generation
// algorithm: codes of the same length are consecutive, and shifting left by
// one bit moves from one length to the next.
func buildHuffmanTable(counts [16]int, symbols []byte) (*huffmanTable, error) {
	t := &huffmanTable{present: true}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total > maxHuffmanSymbols {
		return nil, DHTInvalidSymbolsLength
	}
	if total != len(symbols) {
		return nil, DHTInvalidSymbolsLength
	}
	copy(t.symbols[:], symbols)

	t.offsets[0] = 0
	for i := 0; i < 16; i++ {
		t.offsets[i+1] = t.offsets[i] + counts[i]
	}

	code := uint32(0)
	for length := 0; length < 16; length++ {
		for j := t.offsets[length]; j < t.offsets[length+1]; j++ {
			t.codes[j] = code
			code++
		}
		code <<= 1
	}
	return t, nil
}

// nextSymbol reads bits one at a time from r, matching the accumulated code
// against the canonical range for each length, until a symbol is found or
// 16 bits have been read with no match (HuffmanSymbolNotFound).
func (t *huffmanTable) nextSymbol(r *bitReader) (byte, error) {
	code := uint32(0)
	for length := 1; length <= 16; length++ {
		bit, ok := r.readBit()
		if !ok {
			return 0, HuffmanReadPastLength
		}
		code = (code << 1) | bit

		lo, hi := t.offsets[length-1], t.offsets[length]
		for j := lo; j < hi; j++ {
			if t.codes[j] == code {
				return t.symbols[j], nil
			}
		}
	}
	return 0, HuffmanSymbolNotFound
}

// extendSigned applies the sign-extension rule used for both DC and AC
// variable-length signed integers: a raw L-bit unsigned value v represents
// a positive number when its top bit is set, and (v - (2^L - 1)) otherwise.
func extendSigned(length uint, v uint32) int32 {
	if length == 0 {
		return 0
	}
	if v < uint32(1)<<(length-1) {
		return int32(v) - int32((uint32(1)<<length)-1)
	}
	return int32(v)
}
