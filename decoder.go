package jpeg

import (
	"context"
)

// decodeMCUGrid Huffman-decodes scanBuf into h.MCUs: a row-major grid of
// ceil(height/8) x ceil(width/8) blocks, one [3][64]int32 per MCU (baseline,
// single-sampled assumption; SPEC_FULL.md §3/§9). Grounded on the bit-level
// decode loop in the teacher's processECS (analyse.go), restructured around
// the shared bitReader/huffmanTable types instead of the teacher's
// tree-walk + rlCodes sign-extension table.
func (h *Header) decodeMCUGrid(ctx context.Context, scanBuf []byte) error {
	// The entropy-coded interleave order follows the SOS component-selector
	// list, not ascending component id or SOF declaration order: processSOS
	// records that list into h.scanOrder (see segment_sos.go).
	active := h.scanOrder

	mcuCols := (h.Width + 7) / 8
	mcuRows := (h.Height + 7) / 8
	total := mcuCols * mcuRows

	h.MCUWidth = mcuCols
	h.MCUHeight = mcuRows
	h.MCUs = make([][3][64]int32, total)

	r := newBitReader(scanBuf)
	previousDC := make([]int32, len(active))

	for i := 0; i < total; i++ {
		if h.RestartInterval > 0 && i%h.RestartInterval == 0 {
			for k := range previousDC {
				previousDC[k] = 0
			}
			r.align()
		}

		if i%mcuCols == 0 && ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		for slot, id := range active {
			c := &h.Components[id-1]
			dcTable := &h.dcTables[c.dcHuffmanSelector]
			acTable := &h.acTables[c.acHuffmanSelector]

			coeff := &h.MCUs[i][slot]

			length, err := dcTable.nextSymbol(r)
			if err != nil {
				return wrapHuffman(err.(HuffmanError))
			}
			if length > 11 {
				return wrapHuffman(HuffmanInvalidDCCoefficientLength)
			}
			raw, ok := r.readLength(uint(length))
			if !ok {
				return wrapHuffman(HuffmanReadPastLength)
			}
			diff := extendSigned(uint(length), raw)
			previousDC[slot] += diff
			coeff[0] = previousDC[slot]

			k := 1
			for k < 64 {
				sym, err := acTable.nextSymbol(r)
				if err != nil {
					return wrapHuffman(err.(HuffmanError))
				}
				if sym == 0x00 { // EOB
					break
				}

				skip := int(sym >> 4)
				coeffLen := uint(sym & 0x0F)
				if sym == 0xF0 { // ZRL
					skip = 16
				}
				if k+skip >= 64 {
					return wrapHuffman(HuffmanZerosExceedMCULength)
				}
				k += skip
				if coeffLen > 10 {
					return wrapHuffman(HuffmanInvalidACCoefficientLength)
				}
				if coeffLen > 0 {
					rawAC, ok := r.readLength(coeffLen)
					if !ok {
						return wrapHuffman(HuffmanReadPastLength)
					}
					coeff[zigzag[k]] = extendSigned(coeffLen, rawAC)
					k++
				}
			}
		}

		if h.control.mcu() {
			h.control.logger().Debug().Int("index", i).Msg("MCU")
		}
	}

	return nil
}
