package jpeg

// processDRI parses a Define Restart Interval segment starting at pos (the
// length field). Grounded on the teacher's defineRestartInterval in
// segment.go.
func (h *Header) processDRI(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok || length != 4 || pos+4 > len(data) {
		return 0, ErrInvalidRestartIntervalMarker
	}
	h.RestartInterval = int(data[pos+2])<<8 | int(data[pos+3])
	h.control.logContent("DRI", map[string]interface{}{"interval": h.RestartInterval})
	return pos + length, nil
}
