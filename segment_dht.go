package jpeg

// processDHT parses a Define Huffman Table segment starting at pos (the
// length field). Grounded on the teacher's defineHuffmanTable in
// segment.go, which builds a binary tree (buildTree/hcnode); this project
// builds the canonical offsets/codes arrays huffmanTable.nextSymbol expects
// instead (see huffman.go).
func (h *Header) processDHT(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok {
		return 0, wrapDHT(DHTMissingNextByte)
	}
	segEnd := pos + length
	if segEnd > len(data) {
		return 0, wrapDHT(DHTMissingNextByte)
	}

	cursor := pos + 2
	remaining := length - 2
	any := false

	for remaining > 0 {
		if cursor >= len(data) {
			return 0, wrapDHT(DHTMissingNextByte)
		}
		info := data[cursor]
		cursor++
		remaining--

		tableID := int(info & 0x0F)
		if tableID > 3 {
			return 0, wrapDHT(DHTInvalidTableId)
		}
		isAC := info>>4 != 0

		if remaining < 16 || cursor+16 > len(data) {
			return 0, wrapDHT(DHTMissingNextByte)
		}
		var counts [16]int
		total := 0
		for i := 0; i < 16; i++ {
			counts[i] = int(data[cursor+i])
			total += counts[i]
		}
		cursor += 16
		remaining -= 16

		if total > maxHuffmanSymbols {
			return 0, wrapDHT(DHTInvalidSymbolsLength)
		}
		if remaining < total || cursor+total > len(data) {
			return 0, wrapDHT(DHTMissingNextByte)
		}
		symbols := make([]byte, total)
		copy(symbols, data[cursor:cursor+total])
		cursor += total
		remaining -= total

		table, err := buildHuffmanTable(counts, symbols)
		if err != nil {
			return 0, wrapDHT(err.(DHTError))
		}
		if isAC {
			h.acTables[tableID] = *table
		} else {
			h.dcTables[tableID] = *table
		}
		any = true

		h.control.logContent("DHT", map[string]interface{}{"table": tableID, "ac": isAC, "symbols": total})
	}

	if remaining != 0 {
		return 0, wrapDHT(DHTInvalidMarkerLength)
	}
	if !any {
		return 0, wrapDHT(DHTNoTableSet)
	}
	return segEnd, nil
}
