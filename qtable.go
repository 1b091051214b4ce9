package jpeg

// zigzag maps a coefficient's position in the zigzag transmission order to
// its natural (row-major) position in an 8x8 block. Derived from the
// teacher's zigZagRowCol table in jpeg.go, flattened in row-major order and
// inverted (the teacher's table is natural-position -> zigzag-position; the
// spec wants the opposite direction, since parsing walks the stream in
// zigzag order and needs to know where each entry lands).
var zigzag = func() [64]int {
	natural := [8][8]int{
		{0, 1, 5, 6, 14, 15, 27, 28},
		{2, 4, 7, 13, 16, 26, 29, 42},
		{3, 8, 12, 17, 25, 30, 41, 43},
		{9, 11, 18, 24, 31, 40, 44, 53},
		{10, 19, 23, 32, 39, 45, 52, 54},
		{20, 22, 33, 38, 46, 51, 55, 60},
		{21, 34, 37, 47, 50, 56, 59, 61},
		{35, 36, 48, 49, 57, 58, 62, 63},
	}
	var z [64]int
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			z[natural[row][col]] = row*8 + col
		}
	}
	return z
}()

type qtableKind int

const (
	qtableLuminance qtableKind = iota
	qtableChrominance
	qtableOther
)

// quantizationTable holds the 64 entries of a DQT table in natural
// (de-zigzagged) order: entries[zigzag[i]] is set from the i-th value read
// off the wire.
type quantizationTable struct {
	present  bool
	extended bool // true for 16-bit entries
	kind     qtableKind
	entries  [64]uint16
}

func qtableKindFor(destination int) qtableKind {
	switch destination {
	case 0:
		return qtableLuminance
	case 1:
		return qtableChrominance
	default:
		return qtableOther
	}
}
