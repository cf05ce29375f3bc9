package astar

import (
	"container/heap"
	"fmt"
)

// Search runs best-first search from start and returns the minimum cost to
// reach any state for which p.IsGoal holds.
//
// Returns:
//
//   - res.Cost:  optimal total step cost (first goal popped).
//   - res.Path:  start…goal if WithReturnPath() was given, nil otherwise.
//   - res.Stats: expansion counters.
//   - err:       ErrNilProblem, ErrNoSolution, ErrNegativeCost or ErrNegativeHeuristic.
//
// Frontier order is (cost+heuristic, cost) ascending: among equal priorities
// the entry with the lower accumulated cost pops first. Insertion order never
// matters, so the result is deterministic for a deterministic Problem.
func Search[S comparable](p Problem[S], start S, opts ...Option) (Result[S], error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if p == nil {
		return Result[S]{}, ErrNilProblem
	}

	// 3) Prepare runner state.
	r := &runner[S]{
		p:       p,
		options: cfg,
		best:    make(map[S]int64),
		closed:  make(map[S]struct{}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	// 4) Seed and run.
	if err := r.init(start); err != nil {
		return Result[S]{}, err
	}
	goal, cost, err := r.process()
	if err != nil {
		return Result[S]{Stats: r.stats}, err
	}

	res := Result[S]{Cost: cost, Stats: r.stats}
	if cfg.ReturnPath {
		res.Path = r.path(start, goal)
	}

	return res, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	p       Problem[S]
	options Options
	best    map[S]int64    // best cost pushed so far per state
	closed  map[S]struct{} // states whose cost is final
	prev    map[S]S        // predecessor on the best known path (ReturnPath only)
	pq      statePQ[S]
	stats   Stats
}

// init pushes start with cost 0.
func (r *runner[S]) init(start S) error {
	h := r.p.Heuristic(start)
	if h < 0 {
		return fmt.Errorf("%w: h(start)=%d", ErrNegativeHeuristic, h)
	}

	heap.Init(&r.pq)
	r.best[start] = 0
	heap.Push(&r.pq, &stateItem[S]{state: start, cost: 0, priority: h})
	r.stats.Pushed++

	return nil
}

// process pops entries until a goal is popped or the frontier is empty.
func (r *runner[S]) process() (S, int64, error) {
	var zero S
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem[S])

		// 1) Skip stale entries: already finalized, or superseded by a cheaper push.
		if _, done := r.closed[item.state]; done {
			r.stats.Stale++
			continue
		}
		if item.cost > r.best[item.state] {
			r.stats.Stale++
			continue
		}

		// 2) First goal popped is optimal under non-negative costs.
		if r.p.IsGoal(item.state) {
			return item.state, item.cost, nil
		}

		// 3) Finalize and expand.
		r.closed[item.state] = struct{}{}
		r.stats.Expanded++
		r.options.OnExpand(r.stats.Expanded, item.cost, item.priority)

		if err := r.expand(item); err != nil {
			return zero, 0, err
		}
	}

	return zero, 0, ErrNoSolution
}

// expand pushes every successor of item that improves on its recorded best cost.
func (r *runner[S]) expand(item *stateItem[S]) error {
	var err error
	r.p.Successors(item.state, func(next S, step int64) {
		if err != nil {
			return
		}
		if step < 0 {
			err = fmt.Errorf("%w: step=%d", ErrNegativeCost, step)
			return
		}
		if _, done := r.closed[next]; done {
			return
		}

		cost := item.cost + step
		if known, ok := r.best[next]; ok && known <= cost {
			return
		}

		h := r.p.Heuristic(next)
		if h < 0 {
			err = fmt.Errorf("%w: h=%d", ErrNegativeHeuristic, h)
			return
		}
		priority := cost + h
		if priority > r.options.MaxPriority {
			r.stats.Pruned++
			return
		}

		r.best[next] = cost
		if r.prev != nil {
			r.prev[next] = item.state
		}
		heap.Push(&r.pq, &stateItem[S]{state: next, cost: cost, priority: priority})
		r.stats.Pushed++
	})

	return err
}

// path walks predecessors back from goal and returns start…goal.
func (r *runner[S]) path(start, goal S) []S {
	out := []S{goal}
	for cur := goal; cur != start; {
		cur = r.prev[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// stateItem is one frontier entry.
type stateItem[S comparable] struct {
	state    S
	cost     int64 // accumulated cost from start
	priority int64 // cost + heuristic
}

// statePQ is a min-heap of *stateItem ordered by (priority, cost) ascending.
// Outdated entries for a state are left in place and skipped when popped.
type statePQ[S comparable] []*stateItem[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less orders by priority, then by lower accumulated cost.
func (pq statePQ[S]) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].cost < pq[j].cost
}

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *statePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*stateItem[S])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *statePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
