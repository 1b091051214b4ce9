package jpeg

// extractScan copies entropy-coded bytes starting at pos into a fresh
// buffer, un-stuffing 0xFF 0x00 into a literal 0xFF and silently consuming
// RSTn markers, until EOI. Returns the unescaped buffer and the offset just
// past the EOI marker.
//
// Grounded on the teacher's processScan (segment.go) for the overall
// "copy until EOI" shape, but the RSTn range test is the corrected
// 0xD0 <= b && b <= 0xD7 rather than original_source's buggy disjunction
// (SPEC_FULL.md §4.4, §9).
func extractScan(data []byte, pos int) ([]byte, int, error) {
	var buf []byte
	i := pos
	for {
		if i >= len(data) {
			return nil, 0, newError(PrematureEnd)
		}
		b := data[i]
		if b != 0xFF {
			buf = append(buf, b)
			i++
			continue
		}
		if i+1 >= len(data) {
			return nil, 0, newError(PrematureEnd)
		}
		next := data[i+1]
		switch {
		case next == 0x00:
			buf = append(buf, 0xFF)
			i += 2
		case next == markerEOI:
			return buf, i + 2, nil
		case isRST(next):
			i += 2
		case next == markerSOI:
			return nil, 0, newError(MultipleSOI)
		default:
			return nil, 0, newError(PrematureEnd)
		}
	}
}
