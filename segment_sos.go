package jpeg

// processSOS parses a Start Of Scan segment starting at pos (the length
// field). Grounded on the teacher's processScanHeader in segment.go.
// Component count is bounded at 3 rather than T.81's general 1..4, per the
// resolved Open Question in SPEC_FULL.md Design Notes.
func (h *Header) processSOS(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok {
		return 0, wrapSOS(SOSMissingNextByte)
	}
	segEnd := pos + length
	if segEnd > len(data) || pos+3 > len(data) {
		return 0, wrapSOS(SOSMissingNextByte)
	}

	cursor := pos + 2
	ns := int(data[cursor])
	cursor++
	if ns < 1 || ns > maxComponents {
		return 0, wrapSOS(SOSInvalidComponentNumber)
	}
	if cursor+2*ns > len(data) {
		return 0, wrapSOS(SOSMissingNextByte)
	}

	order := make([]int, 0, ns)
	seen := map[int]bool{}
	for i := 0; i < ns; i++ {
		id := int(data[cursor])
		sel := data[cursor+1]
		cursor += 2

		if h.zeroBased {
			id++
		}
		if id < 1 || id > h.numComponents {
			return 0, wrapSOS(SOSInvalidComponentID)
		}
		if seen[id] {
			return 0, wrapSOS(SOSDuplicateComponentID)
		}
		seen[id] = true

		dc := int(sel >> 4)
		ac := int(sel & 0x0F)
		if dc > 3 || ac > 3 {
			return 0, wrapSOS(SOSInvalidHuffmanTableID)
		}

		c := h.componentByID(id)
		c.dcHuffmanSelector = dc
		c.acHuffmanSelector = ac
		c.usedInSOS = true
		order = append(order, id)
	}

	if cursor+3 > len(data) {
		return 0, wrapSOS(SOSMissingNextByte)
	}
	ss := int(data[cursor])
	se := int(data[cursor+1])
	approx := data[cursor+2]
	cursor += 3

	if ss != 0 || se > 63 {
		return 0, wrapSOS(SOSInvalidSpectralSelection)
	}
	approxHigh := int(approx >> 4)
	approxLow := int(approx & 0x0F)
	if approxHigh != 0 || approxLow != 0 {
		return 0, wrapSOS(SOSInvalidSuccessiveApproximation)
	}

	if length-6-2*ns != 0 {
		return 0, wrapSOS(SOSInvalidMarkerLength)
	}

	h.StartSpectral = ss
	h.EndSpectral = se
	h.ApproxHigh = approxHigh
	h.ApproxLow = approxLow
	h.scanOrder = order

	h.control.logContent("SOS", map[string]interface{}{"components": ns})

	return segEnd, nil
}
