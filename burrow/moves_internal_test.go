package burrow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHomeSlot_PanicsWithoutFreeSlot(t *testing.T) {
	full, err := ParseDiagram("#############\n#...........#\n###A#B#C#D###\n  #A#B#C#D#\n  #########\n")
	require.NoError(t, err)
	require.Panics(t, func() { full.homeSlot(Amber) })

	blocked, err := ParseDiagram("#############\n#A..........#\n###.#A#C#D###\n  #B#B#C#D#\n  #########\n")
	require.NoError(t, err)
	require.Panics(t, func() { blocked.homeSlot(Amber) })
}

func TestHomeSlot_Deepest(t *testing.T) {
	b, err := ParseDiagram("#############\n#A.........B#\n###.#.#C#D###\n  #A#B#C#D#\n  #########\n")
	require.NoError(t, err)
	require.Equal(t, 0, b.homeSlot(Amber))
	require.Equal(t, 0, b.homeSlot(Bronze))
	require.True(t, b.settled(0, 1))
	require.Equal(t, 1, b.settledCount(0))
}

func TestHallClear(t *testing.T) {
	b, err := ParseDiagram("#############\n#.....D.A...#\n###.#B#C#.###\n  #########\n")
	require.NoError(t, err)

	require.True(t, b.hallClear(4, 0))
	require.False(t, b.hallClear(4, 5))
	require.False(t, b.hallClear(7, 2), "D at 5 blocks the way left")
	require.True(t, b.hallClear(7, 6))
	require.False(t, b.hallClear(5, 8), "A at 7 blocks the way right")
}
