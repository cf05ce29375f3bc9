package burrow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/astar"
)

// Solution is the outcome of Solve.
//
// Boards and Moves are populated only when astar.WithReturnPath() is passed:
// Boards runs from the start to the goal inclusive and Moves[i] turns
// Boards[i] into Boards[i+1].
type Solution struct {
	Cost   int64
	Boards []Board
	Moves  []Move
	Stats  astar.Stats
}

// problem adapts Board to astar.Problem.
type problem struct{}

func (problem) IsGoal(b Board) bool      { return b.IsGoal() }
func (problem) Heuristic(b Board) int64 { return b.Heuristic() }
func (problem) Successors(b Board, yield func(Board, int64)) {
	for _, m := range b.Moves() {
		yield(b.apply(m), m.Cost)
	}
}

// Solve returns the minimum total cost of bringing every token home.
// Options are passed through to astar.Search (WithReturnPath, WithMaxPriority,
// WithOnExpand). An unreachable goal yields an error matching both
// ErrNoSolution and astar.ErrNoSolution.
func Solve(b Board, opts ...astar.Option) (Solution, error) {
	res, err := astar.Search[Board](problem{}, b, opts...)
	if err != nil {
		if errors.Is(err, astar.ErrNoSolution) {
			return Solution{Stats: res.Stats}, fmt.Errorf("%w: %w", ErrNoSolution, err)
		}
		return Solution{Stats: res.Stats}, err
	}

	sol := Solution{Cost: res.Cost, Boards: res.Path, Stats: res.Stats}
	for i := 1; i < len(res.Path); i++ {
		sol.Moves = append(sol.Moves, moveBetween(res.Path[i-1], res.Path[i]))
	}

	return sol, nil
}

// moveBetween recovers the single move that turns a into b.
func moveBetween(a, b Board) Move {
	var from, to Position
	var kind Kind
	for _, p := range a.cells() {
		ka, kb := a.At(p), b.At(p)
		switch {
		case ka != Empty && kb == Empty:
			from, kind = p, ka
		case ka == Empty && kb != Empty:
			to = p
		}
	}

	return newMove(kind, from, to)
}

// cells lists every standable position of b.
func (b Board) cells() []Position {
	out := make([]Position, 0, len(AllowedOffsets)+RoomCount*b.depth)
	for _, x := range AllowedOffsets {
		out = append(out, Hallway(x))
	}
	for _, id := range RoomIDs {
		for r := 0; r < b.depth; r++ {
			out = append(out, Room(id, r))
		}
	}

	return out
}
