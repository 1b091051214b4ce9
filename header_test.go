package jpeg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildMinimalJPEG assembles the scenario-1 stream from SPEC_FULL.md §8: a
// 1x1 baseline image with one component, one quantization table, one DC and
// one AC Huffman table each holding a single 1-bit code, and a single byte
// of entropy data (DC length 0, AC EOB).
func buildMinimalJPEG() []byte {
	var b []byte
	b = append(b, 0xFF, 0xD8) // SOI

	// APP0 (JFIF), the literal bytes from SPEC_FULL.md §8 scenario 1.
	b = append(b, 0xFF, 0xE0, 0x00, 0x10,
		0x4A, 0x46, 0x49, 0x46, 0x00, // "JFIF\0"
		0x01, 0x01, // major, minor
		0x00,       // units
		0x00, 0x01, // x density
		0x00, 0x01, // y density
		0x00, 0x00, // thumbnail dims
	)

	// DQT: one 8-bit table at destination 0, all entries 0x10.
	dqt := []byte{0x00} // info: 8-bit, dest 0
	for i := 0; i < 64; i++ {
		dqt = append(dqt, 0x10)
	}
	b = append(b, 0xFF, 0xDB, 0x00, byte(2+len(dqt)))
	b = append(b, dqt...)

	// SOF0: 1x1, one component, id 1, sampling 1x1, qtable 0.
	b = append(b, 0xFF, 0xC0, 0x00, 0x0B,
		0x08,       // precision
		0x00, 0x01, // height
		0x00, 0x01, // width
		0x01,             // Nf
		0x01, 0x11, 0x00, // id, sampling, qsel
	)

	// DHT: one DC table (id 0) and one AC table (id 0), each with a single
	// length-1 code for symbol 0x00.
	oneSymbolTable := func(infoByte byte) []byte {
		t := []byte{infoByte}
		counts := make([]byte, 16)
		counts[0] = 1
		t = append(t, counts...)
		t = append(t, 0x00)
		return t
	}
	dht := append(oneSymbolTable(0x00), oneSymbolTable(0x10)...)
	b = append(b, 0xFF, 0xC4, 0x00, byte(2+len(dht)))
	b = append(b, dht...)

	// SOS: one component, DC/AC selector 0, full spectral range, no
	// successive approximation.
	b = append(b, 0xFF, 0xDA, 0x00, 0x08,
		0x01,       // Ns
		0x01, 0x00, // id, dc/ac selector
		0x00, 0x3F, 0x00, // Ss, Se, approx
	)

	b = append(b, 0x00)       // one byte of entropy data
	b = append(b, 0xFF, 0xD9) // EOI
	return b
}

func TestDecodeMinimalImage(t *testing.T) {
	h, err := Decode(context.Background(), buildMinimalJPEG(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, h.Width)
	require.Equal(t, 1, h.Height)
	require.Equal(t, 1, h.MCUWidth)
	require.Equal(t, 1, h.MCUHeight)
	require.Len(t, h.MCUs, 1)
	require.NotNil(t, h.JFIF)
	require.Equal(t, byte(1), h.JFIF.Major)
}

func TestDecodeNoStartOfImage(t *testing.T) {
	_, err := Decode(context.Background(), []byte{0x41, 0x42, 0x43}, nil)
	require.Error(t, err)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, StartOfImageNotFound, jerr.Kind)
}

func TestDecodeEmptyStream(t *testing.T) {
	_, err := Decode(context.Background(), nil, nil)
	require.Error(t, err)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, StartOfImageNotFound, jerr.Kind)
}

func TestDecodeSOIWithNoData(t *testing.T) {
	_, err := Decode(context.Background(), []byte{0xFF, 0xD8}, nil)
	require.Error(t, err)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, NoData, jerr.Kind)
}

func TestDecodeMultipleSOF(t *testing.T) {
	data := buildMinimalJPEG()
	// Splice a second, identical SOF0 segment in right before the first one.
	sof0 := []byte{0xFF, 0xC0, 0x00, 0x0B, 0x08, 0x00, 0x01, 0x00, 0x01, 0x01, 0x01, 0x11, 0x00}
	idx := findSOF0(data)
	require.GreaterOrEqual(t, idx, 0)
	out := append([]byte{}, data[:idx]...)
	out = append(out, sof0...)
	out = append(out, data[idx:]...)

	_, err := Decode(context.Background(), out, nil)
	require.Error(t, err)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, MultipleSOF, jerr.Kind)
}

func TestDecodeSOSBeforeSOF(t *testing.T) {
	_, err := Decode(context.Background(), []byte{0xFF, 0xD8, 0xFF, 0xDA}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "SOS")
}

func TestDecodeSOSNotFound(t *testing.T) {
	// SOI followed by a single harmless marker, then the stream just stops
	// without ever reaching SOS or EOI.
	_, err := Decode(context.Background(), []byte{0xFF, 0xD8, 0xFF, 0x01}, nil)
	require.Error(t, err)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, SOSNotFound, jerr.Kind)
}

func TestDecodeDataAfterEOI(t *testing.T) {
	data := append(buildMinimalJPEG(), 0x00, 0x01)
	_, err := Decode(context.Background(), data, nil)
	require.Error(t, err)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, DataAfterEOI, jerr.Kind)
}

func TestDecodeInvalidDQTDestination(t *testing.T) {
	_, err := Decode(context.Background(), []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x03, 0x05}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "DQT")
}

func TestExtractScanUnescapesByteStuffing(t *testing.T) {
	data := []byte{0xAB, 0xFF, 0x00, 0xCD, 0xFF, 0xD9}
	buf, end, err := extractScan(data, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xFF, 0xCD}, buf)
	require.Equal(t, len(data), end)
}

func TestExtractScanConsumesRestartMarkers(t *testing.T) {
	data := []byte{0x01, 0xFF, 0xD0, 0x02, 0xFF, 0xD9}
	buf, _, err := extractScan(data, 0)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, buf)
}

func TestExtractScanPrematureEnd(t *testing.T) {
	data := []byte{0x01, 0x02}
	_, _, err := extractScan(data, 0)
	require.Error(t, err)
}

func findSOF0(data []byte) int {
	for i := 0; i+1 < len(data); i++ {
		if data[i] == 0xFF && data[i+1] == markerSOF0 {
			return i
		}
	}
	return -1
}
