// Package burrow models the amphipod burrow puzzle and solves it with
// heuristic best-first search (package astar).
//
// Overview:
//
//   - Four kinds of tokens (Amber, Bronze, Copper, Desert) start scattered in
//     four side rooms below an 11-cell hallway. Each kind has a home room and
//     a per-cell movement cost of 1, 10, 100 or 1000.
//   - A Board is a comparable snapshot of every cell. It serves as the search
//     memo key, so equal arrangements are always recognized as one state.
//   - Board.Moves generates only legal moves; Board.Heuristic is an admissible,
//     consistent estimate of the remaining cost; Solve runs astar.Search and
//     returns the minimum total cost.
//
// Rules:
//
//   - Tokens never stop on the hallway cell directly above a room.
//   - A token leaving a room stops in the hallway; it never goes straight into
//     another room.
//   - A hallway token only moves into its own home room, only once that room
//     holds no token of another kind, and it walks to the deepest free slot.
//   - A token that is home and rests on its own kind only never moves again.
//   - No token may pass through another.
//
// Input:
//
//	ParseDiagram reads the usual five-line layout (more room rows for deeper
//	burrows). Unfold splices in the two hidden rows that turn the depth-2
//	puzzle into its depth-4 variant.
//
// Failure semantics:
//
//   - Construction and parsing return wrapped sentinels (ErrBadDiagram,
//     ErrKindCount, ErrFloating, ...).
//   - Solve returns ErrNoSolution if the goal is unreachable. For boards built
//     by NewBoard this indicates a bug, not an input condition.
//   - Internal invariant breaches (asking for a home slot that cannot exist)
//     panic.
package burrow
