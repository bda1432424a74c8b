// Package astar solves a single start→goal query over a static,
// 4-connected maze using A* search with the L1 (Manhattan) heuristic.
//
// Squares are expanded smallest-score-first using f(x) = g(x) + h(x), where
// g(x) is the step count from start along the recorded route and h(x) is the
// Manhattan distance to goal. Ties on f break on h, then row, then column,
// so the expansion order is fully deterministic.
//
// The search keeps the first discovered route to every square: once a square
// is on the frontier or in the explored set it is never reconsidered, even if
// a shorter route to it turns up later. On unit-cost grids this matches true
// shortest paths in practice, but it is not the textbook relaxation rule.
//
// Complexity (W×H grid):
//
//   - Time:  O(W×H log(W×H))
//   - Each square is pushed onto the frontier at most once: ≤ W×H pushes.
//   - Each heap operation costs O(log N), N ≤ W×H.
//   - Space: O(W×H) for the frontier, parent map, and explored set.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/amaze/maze"
)

// neighborOffsets lists the 4 axis-aligned neighbor deltas (Δrow, Δcol)
// in the fixed visit order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Solve runs A* over m from m.Start() to m.Goal() and returns the outcome.
//
// Returns:
//
//   - res: Found/Path/Explored/Steps snapshot. Found == false means the
//     frontier was exhausted (or the step budget spent) before reaching the
//     goal — a valid result, not an error.
//   - err: ErrNilMaze or ErrInvalidMaze for bad inputs, ErrBadStepLimit for
//     a bad option, ErrCorruptParentChain for a broken internal invariant.
//
// Preconditions and validation (in order):
//  1. Options must be well-formed (ErrBadStepLimit).
//  2. m must be non-nil (ErrNilMaze).
//  3. Start and goal must be in-bounds and unblocked (ErrInvalidMaze).
//  4. Start and goal must be distinct (ErrInvalidMaze).
//
// Options customization:
//
//   - WithStepLimit(n): abandon the search after n frontier pops.
//   - WithOnEnqueue(fn), WithOnExpand(fn): observation hooks.
//
// The maze is read-only during solving; all mutable state is owned by this
// invocation, so independent solves may share one Maze concurrently.
func Solve(m maze.Maze, opts ...Option) (*Result, error) {
	// 1) Build options and catch any invalid ones immediately.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the maze itself.
	if m == nil {
		return nil, ErrNilMaze
	}
	if err := validate(m); err != nil {
		return nil, err
	}

	// 3) Prepare per-invocation state. Let N = W×H.
	n := m.Width() * m.Height()
	r := &runner{
		m:          m,
		opts:       cfg,
		start:      m.Start(),
		goal:       m.Goal(),
		pq:         make(frontier, 0, n/4+1),
		inFrontier: make(map[maze.Square]bool, n),
		parent:     make(map[maze.Square]maze.Square, n),
		explored:   make(map[maze.Square]bool, n),
	}
	heap.Init(&r.pq)

	// 4) Run the explore/expand loop.
	return r.process()
}

// validate checks the solver's maze preconditions, wrapping each failure
// in ErrInvalidMaze.
func validate(m maze.Maze) error {
	start, goal := m.Start(), m.Goal()
	for _, s := range [2]maze.Square{start, goal} {
		if s.Row < 0 || s.Row >= m.Height() || s.Col < 0 || s.Col >= m.Width() {
			return fmt.Errorf("%w: %v outside %d×%d grid", ErrInvalidMaze, s, m.Width(), m.Height())
		}
		if m.IsBlocked(s) {
			return fmt.Errorf("%w: %v is blocked", ErrInvalidMaze, s)
		}
	}
	if start == goal {
		return fmt.Errorf("%w: start equals goal %v", ErrInvalidMaze, start)
	}

	return nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	m           maze.Maze                   // The input maze; read-only within Solve.
	opts        Options                     // Configuration (step limit, hooks).
	start, goal maze.Square                 // Endpoints, cached from the maze.
	pq          frontier                    // Min-heap of discovered, unexpanded squares.
	inFrontier  map[maze.Square]bool        // Frontier membership, for O(1) duplicate checks.
	parent      map[maze.Square]maze.Square // Square → square it was first reached from.
	explored    map[maze.Square]bool        // Squares already popped and expanded.
	steps       int                         // Frontier pops so far.
}

// process is the core explore/expand loop. Starting from the start square,
// it repeatedly enqueues the current square's valid neighbors, pops the
// smallest-scored square, and either terminates on the goal, gives up on an
// empty frontier or spent step budget, or expands and continues.
func (r *runner) process() (*Result, error) {
	current, g := r.start, 0
	for {
		// 1) Discover the current square's valid neighbors.
		r.enqueueNeighbors(current, g)

		// 2) An empty frontier means every reachable square has been
		//    expanded without meeting the goal: no path exists.
		if r.pq.Len() == 0 {
			return r.notFound(), nil
		}

		// 3) Pop the minimum (f, h, row, column) square as the new current.
		e := heap.Pop(&r.pq).(*entry)
		delete(r.inFrontier, e.square)
		r.steps++

		// 4) Goal reached: reconstruct the path from the parent chain.
		if e.square == r.goal {
			path, err := r.pathToGoal()
			if err != nil {
				return nil, err
			}

			return &Result{Found: true, Path: path, Explored: r.explored, Steps: r.steps}, nil
		}

		// 5) Step budget spent: abandon deterministically.
		if r.opts.StepLimit > 0 && r.steps >= r.opts.StepLimit {
			return r.notFound(), nil
		}

		// 6) Mark expanded and continue from the popped square.
		r.explored[e.square] = true
		r.opts.OnExpand(e.square)
		current, g = e.square, e.g
	}
}

// enqueueNeighbors examines the 4 axis-aligned neighbors of current in the
// fixed order up, down, left, right. A neighbor is enqueued iff it is
// in-bounds, unblocked, not the start square, not yet explored, and not
// already on the frontier. The first route found to a square is the one
// kept: its parent is recorded exactly once, here.
func (r *runner) enqueueNeighbors(current maze.Square, g int) {
	for _, d := range neighborOffsets {
		nb := maze.Square{Row: current.Row + d[0], Col: current.Col + d[1]}
		if nb.Row < 0 || nb.Row >= r.m.Height() || nb.Col < 0 || nb.Col >= r.m.Width() {
			continue
		}
		if r.m.IsBlocked(nb) || nb == r.start || r.explored[nb] || r.inFrontier[nb] {
			continue
		}
		r.parent[nb] = current
		e := &entry{square: nb, g: g + 1, h: nb.ManhattanDistance(r.goal)}
		heap.Push(&r.pq, e)
		r.inFrontier[nb] = true
		r.opts.OnEnqueue(nb, e.g, e.h)
	}
}

// notFound snapshots the current state into a Found == false Result.
func (r *runner) notFound() *Result {
	return &Result{Found: false, Path: nil, Explored: r.explored, Steps: r.steps}
}

// pathToGoal walks parent links backward from the goal until reaching the
// start, collecting the squares strictly between them, then reverses to
// obtain start→goal order. The walk is bounded by W×H steps; overrunning
// that bound means a parent chain cycle or a missing link, which violates
// the record-once discovery invariant and returns ErrCorruptParentChain.
func (r *runner) pathToGoal() ([]maze.Square, error) {
	bound := r.m.Width() * r.m.Height()
	var path []maze.Square
	cur := r.goal
	for hops := 0; ; hops++ {
		if hops > bound {
			return nil, fmt.Errorf("%w: walked %d links from goal %v", ErrCorruptParentChain, hops, r.goal)
		}
		p, ok := r.parent[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no parent recorded for %v", ErrCorruptParentChain, cur)
		}
		if p == r.start {
			break
		}
		path = append(path, p)
		cur = p
	}
	// Reverse to get start → goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
