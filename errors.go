package jpeg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds for the structural, ordering and cross-validation errors that
// do not belong to a single segment processor.
type Kind int

const (
	StartOfImageNotFound Kind = iota
	NoData
	PrematureEnd
	InvalidMarker
	UnknownMarker
	MultipleSOI
	MultipleSOF
	DataAfterEOI
	StartOfFrameNotFound
	QTableNotFound
	HTableNotFound
	SOSNotFound
	RestartMarkerBeforeSOS
	EndOfImageBeforeSOS
	InvalidColorComponent
	InvalidAPP0Marker
)

var kindNames = [...]string{
	"JPEG has no Start of Image marker",
	"No data after Start of Image marker",
	"the file ended prematurely",
	"a 0xFF was found with no code after it",
	"an unknown marker was encountered",
	"encountered multiple Start of Image markers",
	"encountered multiple Start of Frame markers",
	"data found after End of Image marker",
	"JPEG has no Start of Frame marker",
	"JPEG has no DQT marker",
	"JPEG has no DHT marker",
	"JPEG has no SOS marker",
	"encountered a restart marker before a Start of Scan marker",
	"encountered an End of Image marker before a Start of Scan marker",
	"a color component was not correctly set",
	"the APP0 marker has invalid data",
}

// Error is the top-level error returned by Decode. It always names the
// underlying Kind; UnknownMarker additionally carries the offending byte.
type Error struct {
	Kind   Kind
	Marker byte // only meaningful for UnknownMarker
}

func (e *Error) Error() string {
	if e.Kind == UnknownMarker {
		return fmt.Sprintf("JPEG error: an unknown marker 0x%02X was encountered", e.Marker)
	}
	return "JPEG error: " + kindNames[e.Kind]
}

func newError(k Kind) error { return &Error{Kind: k} }

func newUnknownMarker(b byte) error { return &Error{Kind: UnknownMarker, Marker: b} }

// DQTError is the nested error kind for the DQT (Define Quantization Table)
// segment processor.
type DQTError int

const (
	DQTMissingNextByte DQTError = iota
	DQTInvalidTableDestination
	DQTNoTableSet
)

func (e DQTError) Error() string {
	switch e {
	case DQTMissingNextByte:
		return "missing next byte in marker"
	case DQTInvalidTableDestination:
		return "QTable destination is greater than 0x03"
	case DQTNoTableSet:
		return "marker did not set any QTable"
	}
	return "unknown DQT error"
}

func wrapDQT(e DQTError) error {
	return errors.Wrap(e, "DQT")
}

// SOF0Error is the nested error kind for the baseline Start Of Frame segment
// processor.
type SOF0Error int

const (
	SOF0MissingNextByte SOF0Error = iota
	SOF0InvalidComponentNumber
	SOF0ZeroDimensions
	SOF0InvalidComponentID
	SOF0ComponentAlreadySet
	SOF0UnsupportedComponentQTable
	SOF0InvalidMarkerLength
	SOF0InvalidPrecision
	SOF0NoComponentSet
)

func (e SOF0Error) Error() string {
	switch e {
	case SOF0MissingNextByte:
		return "missing next byte in marker"
	case SOF0InvalidComponentNumber:
		return "number of components is invalid or unsupported"
	case SOF0ZeroDimensions:
		return "marker has width or height set to zero"
	case SOF0InvalidComponentID:
		return "component has invalid or unsupported id"
	case SOF0ComponentAlreadySet:
		return "tried to overwrite a set component"
	case SOF0UnsupportedComponentQTable:
		return "component uses unsupported QTable"
	case SOF0InvalidMarkerLength:
		return "stated marker length does not match actual component length"
	case SOF0InvalidPrecision:
		return "marker has invalid precision"
	case SOF0NoComponentSet:
		return "no component was set by marker"
	}
	return "unknown SOF0 error"
}

func wrapSOF0(e SOF0Error) error {
	return errors.Wrap(e, "SOF0")
}

// DHTError is the nested error kind for the DHT (Define Huffman Table)
// segment processor.
type DHTError int

const (
	DHTMissingNextByte DHTError = iota
	DHTInvalidMarkerLength
	DHTInvalidTableId
	DHTInvalidSymbolsLength
	DHTNoTableSet
)

func (e DHTError) Error() string {
	switch e {
	case DHTMissingNextByte:
		return "missing next byte in marker"
	case DHTInvalidMarkerLength:
		return "stated marker length does not match actual length"
	case DHTInvalidTableId:
		return "a table has an invalid table id"
	case DHTInvalidSymbolsLength:
		return "a table has more symbols than allowed"
	case DHTNoTableSet:
		return "no Huffman table was set by marker"
	}
	return "unknown DHT error"
}

func wrapDHT(e DHTError) error {
	return errors.Wrap(e, "DHT")
}

// SOSError is the nested error kind for the Start Of Scan segment processor.
type SOSError int

const (
	SOSMissingNextByte SOSError = iota
	SOSInvalidMarkerLength
	SOSInvalidOrder
	SOSInvalidComponentNumber
	SOSInvalidComponentID
	SOSDuplicateComponentID
	SOSInvalidHuffmanTableID
	SOSInvalidSpectralSelection
	SOSInvalidSuccessiveApproximation
)

func (e SOSError) Error() string {
	switch e {
	case SOSMissingNextByte:
		return "missing next byte in marker"
	case SOSInvalidMarkerLength:
		return "stated marker length does not match actual length"
	case SOSInvalidOrder:
		return "Start of Scan reached before Start of Frame"
	case SOSInvalidComponentNumber:
		return "invalid number of components"
	case SOSInvalidComponentID:
		return "invalid component id"
	case SOSDuplicateComponentID:
		return "multiple components have the same id"
	case SOSInvalidHuffmanTableID:
		return "a Huffman table id greater than 3 was reached"
	case SOSInvalidSpectralSelection:
		return "either the starting or ending spectral selection is out of bounds"
	case SOSInvalidSuccessiveApproximation:
		return "the successive approximation is out of bounds"
	}
	return "unknown SOS error"
}

func wrapSOS(e SOSError) error {
	return errors.Wrap(e, "SOS")
}

// ErrInvalidRestartIntervalMarker is returned by the DRI segment processor when
// the stated marker length is not 4.
var ErrInvalidRestartIntervalMarker = errors.New("DRI: the DRI marker has invalid data")

// HuffmanError is the nested error kind raised while decoding the
// entropy-coded MCU grid.
type HuffmanError int

const (
	HuffmanReadPastLength HuffmanError = iota
	HuffmanSymbolNotFound
	HuffmanInvalidDCCoefficientLength
	HuffmanZerosExceedMCULength
	HuffmanInvalidACCoefficientLength
)

func (e HuffmanError) Error() string {
	switch e {
	case HuffmanReadPastLength:
		return "entire Huffman bit stream read"
	case HuffmanSymbolNotFound:
		return "symbol not found after reading past 16 bits"
	case HuffmanInvalidDCCoefficientLength:
		return "DC coefficient had length greater than 11"
	case HuffmanZerosExceedMCULength:
		return "AC table zeroes exceeded run length of MCU"
	case HuffmanInvalidACCoefficientLength:
		return "AC coefficient had length greater than 10"
	}
	return "unknown Huffman decoding error"
}

func wrapHuffman(e HuffmanError) error {
	return errors.Wrap(e, "Huffman decode")
}
