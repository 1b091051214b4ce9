package jpeg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestZigzagNaturalOrder checks the invariant SPEC_FULL.md §8 spells out:
// the first stream entry lands at entries[0], the 6th at entries[zigzag[5]] == entries[2].
func TestZigzagNaturalOrder(t *testing.T) {
	require.Equal(t, 0, zigzag[0])
	require.Equal(t, 2, zigzag[5])
}

func TestQtableKindFor(t *testing.T) {
	cases := map[int]qtableKind{
		0: qtableLuminance,
		1: qtableChrominance,
		2: qtableOther,
		3: qtableOther,
	}
	for dest, want := range cases {
		require.Equalf(t, want, qtableKindFor(dest), "destination %d", dest)
	}
}
