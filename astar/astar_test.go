package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/astar"
)

type arc struct {
	to   string
	cost int64
}

// graphProblem is a small explicit graph with an optional heuristic table.
type graphProblem struct {
	arcs map[string][]arc
	goal string
	h    map[string]int64
}

func (g *graphProblem) IsGoal(s string) bool         { return s == g.goal }
func (g *graphProblem) Heuristic(s string) int64     { return g.h[s] }
func (g *graphProblem) add(from, to string, c int64) { g.arcs[from] = append(g.arcs[from], arc{to, c}) }
func (g *graphProblem) Successors(s string, yield func(string, int64)) {
	for _, a := range g.arcs[s] {
		yield(a.to, a.cost)
	}
}

func newGraph(goal string) *graphProblem {
	return &graphProblem{arcs: map[string][]arc{}, goal: goal, h: map[string]int64{}}
}

// triangle: A→B(1), B→C(2), A→C(5).
func triangle() *graphProblem {
	g := newGraph("C")
	g.add("A", "B", 1)
	g.add("B", "C", 2)
	g.add("A", "C", 5)

	return g
}

// gridProblem walks a width×height open grid from (0,0) to the top-right cell.
type gridProblem struct {
	w, h      int
	manhattan bool
}

type cell struct{ x, y int }

func (g gridProblem) IsGoal(c cell) bool { return c.x == g.w-1 && c.y == 0 }
func (g gridProblem) Heuristic(c cell) int64 {
	if !g.manhattan {
		return 0
	}
	return int64(g.w - 1 - c.x + c.y)
}
func (g gridProblem) Successors(c cell, yield func(cell, int64)) {
	for _, d := range [4]cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := cell{c.x + d.x, c.y + d.y}
		if n.x >= 0 && n.y >= 0 && n.x < g.w && n.y < g.h {
			yield(n, 1)
		}
	}
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestSearch_NilProblem(t *testing.T) {
	_, err := astar.Search[string](nil, "A")
	require.ErrorIs(t, err, astar.ErrNilProblem)
}

func TestSearch_NegativeCost(t *testing.T) {
	g := newGraph("B")
	g.add("A", "B", -1)
	_, err := astar.Search[string](g, "A")
	require.ErrorIs(t, err, astar.ErrNegativeCost)
}

func TestSearch_NegativeHeuristic(t *testing.T) {
	g := triangle()
	g.h["A"] = -3
	_, err := astar.Search[string](g, "A")
	require.ErrorIs(t, err, astar.ErrNegativeHeuristic)
}

func TestWithMaxPriority_NegativePanics(t *testing.T) {
	require.PanicsWithValue(t, astar.ErrBadMaxPriority.Error(), func() {
		astar.WithMaxPriority(-1)
	})
}

// ------------------------------------------------------------------------
// 2. Optimality and paths.
// ------------------------------------------------------------------------

func TestSearch_Triangle(t *testing.T) {
	res, err := astar.Search[string](triangle(), "A", astar.WithReturnPath())
	require.NoError(t, err)
	require.EqualValues(t, 3, res.Cost)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestSearch_NoPathWithoutOption(t *testing.T) {
	res, err := astar.Search[string](triangle(), "A")
	require.NoError(t, err)
	require.Nil(t, res.Path)
}

func TestSearch_StartIsGoal(t *testing.T) {
	res, err := astar.Search[string](triangle(), "C", astar.WithReturnPath())
	require.NoError(t, err)
	require.Zero(t, res.Cost)
	require.Equal(t, []string{"C"}, res.Path)
	require.Zero(t, res.Stats.Expanded)
}

func TestSearch_NoSolution(t *testing.T) {
	g := triangle()
	g.goal = "Z"
	res, err := astar.Search[string](g, "A")
	require.ErrorIs(t, err, astar.ErrNoSolution)
	require.Equal(t, 3, res.Stats.Expanded)
}

// A better route discovered later must supersede an earlier, worse push.
func TestSearch_DecreaseKey(t *testing.T) {
	g := newGraph("T")
	g.add("S", "X", 10)
	g.add("S", "A", 1)
	g.add("A", "B", 1)
	g.add("B", "X", 1)
	g.add("X", "T", 1)

	res, err := astar.Search[string](g, "S", astar.WithReturnPath())
	require.NoError(t, err)
	require.EqualValues(t, 4, res.Cost)
	require.Equal(t, []string{"S", "A", "B", "X", "T"}, res.Path)
}

func TestSearch_HeuristicReducesWork(t *testing.T) {
	plain, err := astar.Search[cell](gridProblem{w: 12, h: 12}, cell{})
	require.NoError(t, err)
	guided, err := astar.Search[cell](gridProblem{w: 12, h: 12, manhattan: true}, cell{}, astar.WithReturnPath())
	require.NoError(t, err)

	require.EqualValues(t, 11, plain.Cost)
	require.Equal(t, plain.Cost, guided.Cost)
	require.Len(t, guided.Path, 12)
	require.Equal(t, 11, guided.Stats.Expanded) // only row y=0
	require.Less(t, guided.Stats.Expanded, plain.Stats.Expanded)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestSearch_MaxPriority(t *testing.T) {
	res, err := astar.Search[string](triangle(), "A", astar.WithMaxPriority(3))
	require.NoError(t, err)
	require.EqualValues(t, 3, res.Cost)
	require.Equal(t, 1, res.Stats.Pruned) // A→C (5) is dropped

	_, err = astar.Search[string](triangle(), "A", astar.WithMaxPriority(2))
	require.ErrorIs(t, err, astar.ErrNoSolution)
}

func TestSearch_OnExpand(t *testing.T) {
	var calls []int
	res, err := astar.Search[string](triangle(), "A", astar.WithOnExpand(func(n int, _, _ int64) {
		calls = append(calls, n)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, calls)
	require.Equal(t, res.Stats.Expanded, len(calls))
}

func TestSearch_Deterministic(t *testing.T) {
	first, err := astar.Search[cell](gridProblem{w: 6, h: 9, manhattan: true}, cell{}, astar.WithReturnPath())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.Search[cell](gridProblem{w: 6, h: 9, manhattan: true}, cell{}, astar.WithReturnPath())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
