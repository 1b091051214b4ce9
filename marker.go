package jpeg

// Marker codes, reusing the teacher's numeric values and names (jpeg.go)
// but without the teacher's 16-bit-combined encoding: markers are dispatched
// here on the single marker byte that follows 0xFF, since that is the unit
// the spec's marker table (SPEC_FULL.md §4.3) is expressed in.
const (
	markerTEM  = 0x01
	markerSOF0 = 0xC0
	// SOF1..SOF15 (except C4, C8, CC) are generic frame headers this
	// decoder does not implement natively; they are skipped like any
	// other sized segment.
	markerDHT = 0xC4
	markerJPG = 0xC8
	markerDAC = 0xCC

	markerRST0 = 0xD0
	markerRST7 = 0xD7
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerDQT  = 0xDB
	markerDNL  = 0xDC
	markerDRI  = 0xDD
	markerDHP  = 0xDE
	markerEXP  = 0xDF

	markerAPP0 = 0xE0
	markerAPP1 = 0xE1
	markerAPP15 = 0xEF

	markerCOM = 0xFE
)

func isRST(b byte) bool {
	return b >= markerRST0 && b <= markerRST7
}

func isSOFn(b byte) bool {
	if b < markerSOF0 || b > 0xCF {
		return false
	}
	return b != markerDHT && b != markerJPG && b != markerDAC
}

func markerName(b byte) string {
	switch {
	case b == markerTEM:
		return "TEM"
	case b == markerSOF0:
		return "SOF0"
	case isSOFn(b):
		return "SOFn"
	case b == markerDHT:
		return "DHT"
	case isRST(b):
		return "RSTn"
	case b == markerSOI:
		return "SOI"
	case b == markerEOI:
		return "EOI"
	case b == markerSOS:
		return "SOS"
	case b == markerDQT:
		return "DQT"
	case b == markerDRI:
		return "DRI"
	case b == markerAPP0:
		return "APP0"
	case b == markerAPP1:
		return "APP1"
	case b >= markerAPP0 && b <= markerAPP15:
		return "APPn"
	case b == markerCOM:
		return "COM"
	default:
		return "unknown"
	}
}

// readUint16 reads a big-endian u16 at off, reporting false if it would run
// past the end of data.
func readUint16(data []byte, off int) (int, bool) {
	if off+1 >= len(data) {
		return 0, false
	}
	return int(data[off])<<8 | int(data[off+1]), true
}
