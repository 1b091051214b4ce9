package jpeg

// processSOF0 parses a baseline Start Of Frame segment starting at pos (the
// length field). Grounded on the teacher's startOfFrame in segment.go,
// trimmed to baseline-only (precision fixed at 8, SPEC_FULL.md Design
// Notes) and to the resolved component-count Open Question (array size 3,
// id == 4 rejected at the array-bound check even though the byte itself is
// tolerated up to 4 during parsing).
func (h *Header) processSOF0(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok {
		return 0, wrapSOF0(SOF0MissingNextByte)
	}
	segEnd := pos + length
	if segEnd > len(data) || pos+8 > len(data) {
		return 0, wrapSOF0(SOF0MissingNextByte)
	}

	cursor := pos + 2
	precision := int(data[cursor])
	cursor++
	if precision != 8 {
		return 0, wrapSOF0(SOF0InvalidPrecision)
	}

	height := int(data[cursor])<<8 | int(data[cursor+1])
	cursor += 2
	width := int(data[cursor])<<8 | int(data[cursor+1])
	cursor += 2
	if height == 0 || width == 0 {
		return 0, wrapSOF0(SOF0ZeroDimensions)
	}

	nf := int(data[cursor])
	cursor++
	if nf == 0 || nf == 2 {
		return 0, wrapSOF0(SOF0InvalidComponentNumber)
	}
	if nf > 4 {
		nf = 4
	}

	if cursor+3*nf > len(data) {
		return 0, wrapSOF0(SOF0MissingNextByte)
	}

	zeroBased := false
	anySet := false
	for i := 0; i < nf; i++ {
		id := int(data[cursor])
		sampling := data[cursor+1]
		qsel := int(data[cursor+2])
		cursor += 3

		if i == 0 && id == 0 {
			zeroBased = true
		}
		if zeroBased {
			id++
		} else if id == 0 {
			return 0, wrapSOF0(SOF0InvalidComponentID)
		}
		if id > 4 {
			return 0, wrapSOF0(SOF0InvalidComponentID)
		}
		if id > maxComponents {
			return 0, wrapSOF0(SOF0InvalidComponentID)
		}

		c := &h.Components[id-1]
		if c.set {
			return 0, wrapSOF0(SOF0ComponentAlreadySet)
		}
		if qsel > 3 {
			return 0, wrapSOF0(SOF0UnsupportedComponentQTable)
		}

		c.set = true
		c.id = id
		c.hFactor = int(sampling >> 4)
		c.vFactor = int(sampling & 0x0F)
		c.qtableSelector = qsel
		c.usedInSOF = true
		anySet = true
		if id > h.numComponents {
			h.numComponents = id
		}
	}
	if !anySet {
		return 0, wrapSOF0(SOF0NoComponentSet)
	}

	if length-8-3*nf != 0 {
		return 0, wrapSOF0(SOF0InvalidMarkerLength)
	}

	h.Width = width
	h.Height = height
	h.Precision = precision
	h.zeroBased = zeroBased
	h.StartSpectral = 0
	h.EndSpectral = 63

	h.control.logContent("SOF0", map[string]interface{}{"width": width, "height": height, "components": nf})

	return segEnd, nil
}
