// Package jpeg parses the marker-segment structure of a baseline JPEG/JFIF
// file and Huffman-decodes its entropy-coded scan into a grid of 8x8
// coefficient blocks. Dequantization, IDCT, color conversion, chroma
// upsampling and final image assembly are out of scope; see SPEC_FULL.md.
package jpeg

import (
	"context"

	perrors "github.com/pkg/errors"
)

// jfifInfo is the parsed APP0 (JFIF) payload.
type jfifInfo struct {
	Major, Minor     byte
	Units            int
	XDensity, YDensity int
	XThumbnail, YThumbnail byte
	Thumbnail        []byte
}

// Header is the decoded result of Decode: the validated frame/scan metadata
// plus the MCU grid of Huffman-decoded (but not dequantized or
// IDCT-transformed) coefficients.
type Header struct {
	Width, Height int
	Precision     int

	Components    [maxComponents]colorComponent
	numComponents int
	zeroBased     bool

	RestartInterval int
	StartSpectral, EndSpectral int
	ApproxHigh, ApproxLow      int

	sofSet bool

	qtables  [4]quantizationTable
	dcTables [4]huffmanTable
	acTables [4]huffmanTable

	JFIF *jfifInfo

	app0Seen          bool
	app0ExtensionSeen bool

	scanOrder []int // component ids in SOS declaration order; the MCU interleave order used by decodeMCUGrid

	MCUWidth, MCUHeight int
	MCUs                [][3][64]int32

	control *Control
}

func (h *Header) componentByID(id int) *colorComponent {
	if id < 1 || id > maxComponents {
		return nil
	}
	return &h.Components[id-1]
}

// Decode parses a byte buffer purporting to be a JPEG/JFIF file and
// Huffman-decodes its entropy-coded scan. ctx is checked once per MCU row
// (SPEC_FULL.md §5) so an embedding caller can abandon a pathologically
// large decode; it is never consulted at finer granularity.
func Decode(ctx context.Context, data []byte, control *Control) (*Header, error) {
	h := &Header{control: control}

	soi := findSOI(data)
	if soi < 0 {
		return nil, newError(StartOfImageNotFound)
	}
	if soi+2 >= len(data) {
		return nil, newError(NoData)
	}

	pos := soi
	h.control.logMarker("SOI", pos)
	pos += 2

	var scanStart int

markerLoop:
	for {
		for pos < len(data) && data[pos] == 0xFF && pos+1 < len(data) && data[pos+1] == 0xFF {
			pos++ // collapse repeated 0xFF fill bytes
		}
		if pos+1 >= len(data) {
			// the marker loop only exits via the SOS case below; running out
			// of bytes here means the stream ended without ever reaching SOS.
			return nil, newError(SOSNotFound)
		}
		if data[pos] != 0xFF {
			return nil, newError(InvalidMarker)
		}
		marker := data[pos+1]
		markerPos := pos
		pos += 2

		switch {
		case marker == markerSOI:
			return nil, newError(MultipleSOI)

		case marker == markerTEM:
			h.control.logMarker("TEM", markerPos)
			// no-op, no length field

		case isRST(marker):
			return nil, newError(RestartMarkerBeforeSOS)

		case marker == markerEOI:
			return nil, newError(EndOfImageBeforeSOS)

		case marker == markerAPP0:
			h.control.logMarker("APP0", markerPos)
			n, err := h.processAPP0(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n

		case marker == markerAPP1:
			return nil, perrors.Wrap(newUnknownMarker(marker), "APP1 (EXIF) parsing is not implemented")

		case marker == markerDQT:
			h.control.logMarker("DQT", markerPos)
			n, err := h.processDQT(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n

		case marker == markerSOF0:
			h.control.logMarker("SOF0", markerPos)
			if h.sofSet {
				return nil, newError(MultipleSOF)
			}
			n, err := h.processSOF0(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n
			h.sofSet = true

		case isSOFn(marker):
			n, err := skipSizedSegment(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n

		case marker == markerDHT:
			h.control.logMarker("DHT", markerPos)
			n, err := h.processDHT(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n

		case marker == markerDRI:
			h.control.logMarker("DRI", markerPos)
			n, err := h.processDRI(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n

		case marker == markerSOS:
			h.control.logMarker("SOS", markerPos)
			if !h.sofSet {
				return nil, wrapSOS(SOSInvalidOrder)
			}
			n, err := h.processSOS(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n
			scanStart = pos
			break markerLoop

		case marker == markerCOM, marker >= markerAPP0 && marker <= markerAPP15, marker == markerDNL,
			marker == markerDHP, marker == markerEXP, marker == markerJPG, marker == markerDAC,
			marker >= 0xF0 && marker <= 0xFD: // JPGn extensions
			n, err := skipSizedSegment(data, pos)
			if err != nil {
				return nil, err
			}
			pos = n

		default:
			return nil, newUnknownMarker(marker)
		}
	}

	if !h.sofSet {
		return nil, newError(StartOfFrameNotFound)
	}
	if !h.anyQTablePresent() {
		return nil, newError(QTableNotFound)
	}
	if !h.anyHTablePresent() {
		return nil, newError(HTableNotFound)
	}

	scanBuf, scanEnd, err := extractScan(data, scanStart)
	if err != nil {
		return nil, err
	}
	if scanEnd < len(data) {
		return nil, newError(DataAfterEOI)
	}

	if err := h.crossValidateComponents(); err != nil {
		return nil, err
	}

	if err := h.decodeMCUGrid(ctx, scanBuf); err != nil {
		return nil, err
	}

	return h, nil
}

func findSOI(data []byte) int {
	for i := 0; i+1 < len(data); i++ {
		if data[i] == 0xFF && data[i+1] == markerSOI {
			return i
		}
	}
	return -1
}

func (h *Header) anyQTablePresent() bool {
	for _, t := range h.qtables {
		if t.present {
			return true
		}
	}
	return false
}

func (h *Header) anyHTablePresent() bool {
	for _, t := range h.dcTables {
		if t.present {
			return true
		}
	}
	for _, t := range h.acTables {
		if t.present {
			return true
		}
	}
	return false
}

func (h *Header) crossValidateComponents() error {
	for i := 0; i < h.numComponents; i++ {
		c := &h.Components[i]
		if c.usedInSOF != c.usedInSOS {
			return newError(InvalidColorComponent)
		}
		if !c.usedInSOS {
			continue
		}
		if !h.dcTables[c.dcHuffmanSelector].present || !h.acTables[c.acHuffmanSelector].present {
			return newError(InvalidColorComponent)
		}
		if !h.qtables[c.qtableSelector].present {
			return newError(InvalidColorComponent)
		}
	}
	return nil
}

// skipSizedSegment reads a big-endian 16-bit length (which includes the two
// length bytes) at pos and returns the offset just past the segment's
// payload.
func skipSizedSegment(data []byte, pos int) (int, error) {
	length, ok := readUint16(data, pos)
	if !ok {
		return 0, newError(PrematureEnd)
	}
	next := pos + length
	if next > len(data) {
		return 0, newError(PrematureEnd)
	}
	return next, nil
}
