// Package astar provides a generic heuristic best-first search engine for
// finding minimum-cost paths through implicit state spaces with
// non-negative step costs.
//
// Overview:
//
//   - The caller supplies a Problem[S]: goal predicate, admissible heuristic,
//     and a successor generator. S is any comparable type; it is used directly
//     as the key of the visited memo.
//   - Search keeps a min-heap frontier ordered by (cost+heuristic, cost) and a
//     memo of the best cost pushed per state. A state is finalized the first
//     time it is popped; later entries for it are skipped as stale.
//   - The first goal popped is optimal. With a zero heuristic Search is plain
//     Dijkstra over the implicit graph.
//
// When to use:
//
//   - Puzzle and planning problems whose state graph is too large to build
//     but cheap to expand on demand.
//   - Any problem where a good lower bound on the remaining cost is available;
//     a tighter bound means fewer expansions, never a different answer.
//
// Key features:
//
//   - ReturnPath: rebuild the start→goal state sequence from predecessors.
//   - MaxPriority: drop successors whose priority exceeds a threshold. This is
//     a tuning hint only. If the threshold is below the true optimum, Search
//     reports ErrNoSolution instead of a wrong answer.
//   - OnExpand: a progress hook, handy for logging long searches.
//
// Performance and complexity:
//
//   - Time:  O(E log E) where E is the number of pushes.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilProblem:        nil Problem.
//   - ErrNoSolution:        frontier exhausted without a goal.
//   - ErrNegativeCost:      a successor reported a negative step cost.
//   - ErrNegativeHeuristic: the heuristic reported a negative value.
//   - ErrBadMaxPriority:    (panic) WithMaxPriority with a negative value.
//
// Thread safety:
//
//   - A Search call owns its frontier and memo exclusively and is single-threaded.
//     Concurrent Search calls are safe as long as the Problem is.
package astar
