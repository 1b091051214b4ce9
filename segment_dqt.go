package jpeg

// processDQT parses a Define Quantization Table segment starting at pos
// (the length field). Grounded on the teacher's defineQuantizationTable in
// segment.go, generalized to store tables in natural (de-zigzagged) order
// via the zigzag index table instead of the teacher's raw-order storage.
func (h *Header) processDQT(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok {
		return 0, wrapDQT(DQTMissingNextByte)
	}
	segEnd := pos + length
	if segEnd > len(data) {
		return 0, wrapDQT(DQTMissingNextByte)
	}

	cursor := pos + 2
	remaining := length - 2
	any := false

	for remaining > 0 {
		if cursor >= len(data) {
			return 0, wrapDQT(DQTMissingNextByte)
		}
		info := data[cursor]
		cursor++
		remaining--

		extended := info>>4 != 0
		destination := int(info & 0x0F)
		if destination > 3 {
			return 0, wrapDQT(DQTInvalidTableDestination)
		}

		entrySize := 1
		if extended {
			entrySize = 2
		}
		need := 64 * entrySize
		if remaining < need || cursor+need > len(data) {
			return 0, wrapDQT(DQTMissingNextByte)
		}

		var t quantizationTable
		t.present = true
		t.extended = extended
		t.kind = qtableKindFor(destination)
		for i := 0; i < 64; i++ {
			var v uint16
			if extended {
				v = uint16(data[cursor])<<8 | uint16(data[cursor+1])
				cursor += 2
			} else {
				v = uint16(data[cursor])
				cursor++
			}
			t.entries[zigzag[i]] = v
		}
		remaining -= need
		h.qtables[destination] = t
		any = true

		h.control.logContent("DQT", map[string]interface{}{"destination": destination, "extended": extended})
	}

	if !any {
		return 0, wrapDQT(DQTNoTableSet)
	}
	return segEnd, nil
}

