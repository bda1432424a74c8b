// Package maze defines the grid primitives consumed by the solver:
// the Square coordinate value type, the Maze interface, and sentinel
// errors for maze construction and validation.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and parsing.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal square outside the grid.
	ErrOutOfBounds = errors.New("maze: square out of bounds")
	// ErrBlockedEndpoint indicates the start or goal square is a wall.
	ErrBlockedEndpoint = errors.New("maze: start and goal must be unblocked")
	// ErrStartIsGoal indicates start and goal name the same square.
	ErrStartIsGoal = errors.New("maze: start and goal must be distinct")
	// ErrBadCell indicates an unrecognized rune in a text maze.
	ErrBadCell = errors.New("maze: unrecognized cell rune")
	// ErrMissingEndpoint indicates a text maze without an 'S' or 'G' cell.
	ErrMissingEndpoint = errors.New("maze: text maze must contain exactly one start and one goal")
	// ErrDuplicateEndpoint indicates a text maze with more than one 'S' or 'G' cell.
	ErrDuplicateEndpoint = errors.New("maze: start and goal may appear only once")
)

// Square is a grid coordinate, the unit of search state.
// It is a value type: two Squares are equal iff both coordinates match,
// and Go's native == / map hashing honor that equality. Immutable once built.
type Square struct {
	Row, Col int
}

// Sq is shorthand for constructing a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// ManhattanDistance returns the L1 distance |Δrow| + |Δcol| between s and o,
// ignoring any obstacles between them.
// Complexity: O(1).
func (s Square) ManhattanDistance(o Square) int {
	dr := s.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := s.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// String renders the square as "(row,col)" for diagnostics and examples.
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Maze is the read-only grid collaborator consumed by the solver.
// Implementations must be safe for concurrent readers: the solver never
// mutates a Maze, and multiple independent solves may share one instance.
type Maze interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// IsBlocked reports whether s is a wall. Out-of-bounds squares
	// must report blocked.
	IsBlocked(s Square) bool
	// Start returns the entry square. Guaranteed in-bounds and unblocked.
	Start() Square
	// Goal returns the target square. Guaranteed in-bounds, unblocked,
	// and distinct from Start.
	Goal() Square
}
