// Package astar defines core types and configuration options for
// heuristic best-first (A*) search over an implicit state space.
//
// The state space is never materialized. A Problem describes it lazily:
// whether a state is a goal, an admissible estimate of the remaining cost,
// and the weighted successors of a state. States are plain comparable values
// and double as keys of the visited memo, so two states are "the same" exactly
// when == says so. Callers must therefore pick a canonical representation.
//
// Complexity:
//
//	– Time:  O(E log E) where E is the number of pushed successor entries.
//	   • Each state is expanded at most once (closed set).
//	   • Each improving successor is pushed once (lazy decrease-key).
//	– Space: O(V + E) for the memo and the frontier.
//
// Options:
//
//	– ReturnPath:  if true, record predecessors and return the start→goal path.
//	– MaxPriority: optional prune threshold on cost+heuristic.
//	– OnExpand:    progress hook invoked once per expanded state.
//
// Errors (sentinel):
//
//	– ErrNilProblem        if the Problem is nil.
//	– ErrNoSolution        if the frontier empties without reaching a goal.
//	– ErrNegativeCost      if a successor reports a negative step cost.
//	– ErrNegativeHeuristic if the heuristic reports a negative estimate.
//	– ErrBadMaxPriority    if MaxPriority < 0 (panics at option construction).
package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilProblem indicates that a nil Problem was passed to Search.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrNoSolution indicates that every reachable state was expanded (or pruned)
	// without ever popping a goal.
	ErrNoSolution = errors.New("astar: no solution reachable from start")

	// ErrNegativeCost indicates that a successor carried a negative step cost,
	// which breaks first-pop optimality.
	ErrNegativeCost = errors.New("astar: negative step cost encountered")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative value.
	ErrNegativeHeuristic = errors.New("astar: negative heuristic encountered")

	// ErrBadMaxPriority indicates that MaxPriority was set to a negative value.
	ErrBadMaxPriority = errors.New("astar: MaxPriority must be non-negative")
)

// Problem describes an implicit weighted state space.
//
// IsGoal reports whether s is terminal.
// Heuristic returns a non-negative lower bound of the remaining cost from s.
// It must never overestimate (admissible); if it is also consistent, the
// closed set never discards an optimal path.
// Successors calls yield once per legal transition from s with its step cost.
type Problem[S comparable] interface {
	IsGoal(s S) bool
	Heuristic(s S) int64
	Successors(s S, yield func(next S, cost int64))
}

// Stats reports how much work a search performed.
type Stats struct {
	Expanded int // states popped and expanded
	Pushed   int // entries pushed onto the frontier
	Stale    int // popped entries skipped as already finalized or superseded
	Pruned   int // successors dropped by MaxPriority
}

// Result is the outcome of a successful Search.
//
// Cost – total step cost from start to the first goal popped.
// Path – start…goal inclusive if ReturnPath was set, otherwise nil.
type Result[S comparable] struct {
	Cost  int64
	Path  []S
	Stats Stats
}

// Options configures the behavior of Search.
//
// ReturnPath  – if true, Result.Path is populated.
// MaxPriority – successors whose cost+heuristic exceeds this are dropped.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no pruning). Pruning is only
//	safe when the true optimum is known to lie below the threshold.
//
// OnExpand    – called after a state is finalized, before its successors are
//
//	generated, with the running expansion count, its cost and priority.
type Options struct {
	ReturnPath  bool
	MaxPriority int64
	OnExpand    func(expanded int, cost, priority int64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables predecessor tracking and path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxPriority sets the prune threshold on cost+heuristic.
// Negative values panic with ErrBadMaxPriority.
func WithMaxPriority(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxPriority.Error())
		}
		o.MaxPriority = limit
	}
}

// WithOnExpand installs a progress hook. A nil fn keeps the no-op default.
func WithOnExpand(fn func(expanded int, cost, priority int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:  false.
//   - MaxPriority: math.MaxInt64 (no pruning).
//   - OnExpand:    no-op.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxPriority: math.MaxInt64,
		OnExpand:    func(int, int64, int64) {},
	}
}
