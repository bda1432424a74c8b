// Package astar defines configuration options, sentinel errors, and the
// Result type for the A* maze solver.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/amaze/maze"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilMaze indicates a nil Maze was passed to Solve.
	ErrNilMaze = errors.New("astar: maze is nil")

	// ErrInvalidMaze indicates the maze violates a precondition:
	// start or goal out of bounds, blocked, or equal to each other.
	// Rejected before the search begins.
	ErrInvalidMaze = errors.New("astar: invalid maze")

	// ErrBadStepLimit indicates WithStepLimit was given a non-positive value.
	ErrBadStepLimit = errors.New("astar: step limit must be positive")

	// ErrCorruptParentChain indicates path reconstruction failed to reach the
	// start square within Width×Height steps. This breaks a structural
	// invariant (a parent is recorded exactly once, at first discovery, so
	// every chain is finite and rooted at start) and is fatal, not retryable.
	ErrCorruptParentChain = errors.New("astar: parent chain does not terminate at start")
)

// Options configures a single Solve invocation.
//
// StepLimit – maximum number of frontier expansions before the search is
// abandoned with a not-found Result. 0 means unlimited.
// OnEnqueue – called when a square is first discovered and pushed onto the
// frontier, with its path cost g and heuristic h.
// OnExpand  – called when a square is popped from the frontier and expanded.
type Options struct {
	StepLimit int
	OnEnqueue func(s maze.Square, g, h int)
	OnExpand  func(s maze.Square)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults:
//   - no step limit,
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		StepLimit: 0,
		OnEnqueue: func(maze.Square, int, int) {},
		OnExpand:  func(maze.Square) {},
		err:       nil,
	}
}

// WithStepLimit bounds the search to at most n frontier expansions.
// When the budget is exhausted the search stops deterministically with a
// not-found Result; this is a defensive cap, not an error condition.
// n must be positive; n <= 0 surfaces as ErrBadStepLimit when Solve runs.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadStepLimit, n)

			return
		}
		o.StepLimit = n
	}
}

// WithOnEnqueue registers a callback to run when a square is first
// discovered and pushed onto the frontier.
func WithOnEnqueue(fn func(s maze.Square, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run when a square is popped from
// the frontier for expansion.
func WithOnExpand(fn func(s maze.Square)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a single solve:
//   - Found: whether a path from start to goal exists.
//   - Path: the squares strictly between start and goal, in traversal order.
//     Empty (nil) when start and goal are adjacent; nil when Found is false.
//   - Explored: every square that was popped from the frontier and expanded.
//     Never contains the start or the goal. Always a superset of Path.
//   - Steps: the number of squares popped from the frontier, goal included.
//
// A failed search (Found == false) is a valid outcome, not an error: it
// reports that the maze has no connecting path, with Explored holding the
// full set of squares reachable from start.
type Result struct {
	Found    bool
	Path     []maze.Square
	Explored map[maze.Square]bool
	Steps    int
}
