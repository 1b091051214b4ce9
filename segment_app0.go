package jpeg

import "bytes"

// JFIF resolution units, reusing the teacher's jfif.go constant values.
const (
	unitsNone    = 0
	unitsPerInch = 1
	unitsPerCM   = 2
)

var jfifIdentifier = []byte("JFIF\x00")
var jfxxIdentifier = []byte("JFXX\x00")

// processAPP0 parses the JFIF/JFXX APP0 segment starting at pos (the byte
// right after the marker code, i.e. the length field). Grounded on the
// teacher's app0() in jfif.go, generalized to the Header type, with explicit
// length checks (at least 8 bytes overall, at least 16 before the fixed JFIF
// fields are read).
func (h *Header) processAPP0(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok {
		return 0, newError(PrematureEnd)
	}
	if length < 8 {
		return 0, newError(InvalidAPP0Marker)
	}
	segEnd := pos + length
	if segEnd > len(data) {
		return 0, newError(PrematureEnd)
	}

	idOff := pos + 2
	if idOff+5 > len(data) {
		return 0, newError(PrematureEnd)
	}
	id := data[idOff : idOff+5]

	isJFIF := bytes.Equal(id, jfifIdentifier)
	isJFXX := bytes.Equal(id, jfxxIdentifier)
	if !isJFIF && !isJFXX {
		return 0, errInvalidAPP0()
	}

	h.control.logContent("APP0", map[string]interface{}{"extension": isJFXX})

	if isJFIF {
		if h.app0Seen {
			h.control.warn("multiple non-extension JFIF APP0 segments; ignoring the second one")
			return segEnd, nil
		}
		if length < 16 {
			return 0, errInvalidAPP0()
		}
		body := idOff + 5
		major := data[body]
		minor := data[body+1]
		units := int(data[body+2])
		if units != unitsNone && units != unitsPerInch && units != unitsPerCM {
			return 0, errInvalidAPP0()
		}
		xDensity := int(data[body+3])<<8 | int(data[body+4])
		yDensity := int(data[body+5])<<8 | int(data[body+6])
		xThumb := data[body+7]
		yThumb := data[body+8]

		thumbBytes := length - 2 - 5 - 9
		if thumbBytes < 0 || segEnd < pos+2+5+9 {
			return 0, errInvalidAPP0()
		}
		thumbStart := body + 9
		if thumbStart+thumbBytes > len(data) {
			return 0, newError(PrematureEnd)
		}
		thumb := make([]byte, thumbBytes)
		copy(thumb, data[thumbStart:thumbStart+thumbBytes])

		h.JFIF = &jfifInfo{
			Major: major, Minor: minor, Units: units,
			XDensity: xDensity, YDensity: yDensity,
			XThumbnail: xThumb, YThumbnail: yThumb,
			Thumbnail: thumb,
		}
		h.app0Seen = true
	} else {
		h.app0ExtensionSeen = true
	}

	return segEnd, nil
}

func errInvalidAPP0() error {
	return newError(InvalidAPP0Marker)
}
