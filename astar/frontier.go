package astar

import "github.com/katalvlaran/amaze/maze"

// entry is a discovered square awaiting expansion, tagged with its path
// cost g (steps from start along the recorded parent chain) and heuristic
// h (Manhattan distance to goal). Both are fixed at discovery time:
// g is parent.g + 1, stored once rather than recomputed by walking the
// parent chain on every comparison.
type entry struct {
	square maze.Square
	g, h   int
}

// f returns the total priority score g + h.
func (e *entry) f() int { return e.g + e.h }

// frontier is a min-heap (priority queue) of *entry implementing
// container/heap, ordered smallest-first by the strict total order
//
//	(f, h, row, column)
//
// f ties break on h, h ties on row, row ties on column. Two distinct
// squares never compare equal (equal row and column means the same
// square), so the pop order is fully deterministic.
type frontier []*entry

// Len returns the number of entries in the heap.
func (fr frontier) Len() int { return len(fr) }

// Less defines the (f, h, row, column) lexicographic comparison.
func (fr frontier) Less(i, j int) bool {
	a, b := fr[i], fr[j]
	if af, bf := a.f(), b.f(); af != bf {
		return af < bf
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.square.Row != b.square.Row {
		return a.square.Row < b.square.Row
	}

	return a.square.Col < b.square.Col
}

// Swap swaps two entries in the heap.
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push adds a new entry x onto the heap.
// Called by heap.Push; x must be of type *entry.
func (fr *frontier) Push(x interface{}) { *fr = append(*fr, x.(*entry)) }

// Pop removes and returns the smallest entry from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *entry.
func (fr *frontier) Pop() interface{} {
	old := *fr
	n := len(old)
	e := old[n-1]
	*fr = old[:n-1]

	return e
}
