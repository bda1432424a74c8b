package maze

import "fmt"

// GridMaze is a concrete Maze over a rectangular grid of blocked cells.
// It is immutable once built: New deep-copies its input, and all methods
// are read-only, so a GridMaze may be shared by concurrent solves.
type GridMaze struct {
	width, height int
	blocked       [][]bool
	start, goal   Square
}

// New constructs a GridMaze from a non-empty, rectangular blocked-cell grid.
// blocked[r][c] == true marks a wall at row r, column c.
// It deep-copies blocked to ensure immutability.
//
// Validation (in order):
//  1. grid must have at least one row and one column (ErrEmptyGrid);
//  2. all rows must have equal length (ErrNonRectangular);
//  3. start and goal must be in-bounds (ErrOutOfBounds);
//  4. start and goal must be unblocked (ErrBlockedEndpoint);
//  5. start and goal must be distinct (ErrStartIsGoal).
//
// Complexity: O(W×H) time and memory.
func New(blocked [][]bool, start, goal Square) (*GridMaze, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation.
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], blocked[r])
	}
	m := &GridMaze{width: w, height: h, blocked: cells, start: start, goal: goal}

	for _, s := range [2]Square{start, goal} {
		if !m.InBounds(s) {
			return nil, fmt.Errorf("%w: %v outside %d×%d grid", ErrOutOfBounds, s, w, h)
		}
		if cells[s.Row][s.Col] {
			return nil, fmt.Errorf("%w: %v is a wall", ErrBlockedEndpoint, s)
		}
	}
	if start == goal {
		return nil, fmt.Errorf("%w: both are %v", ErrStartIsGoal, start)
	}

	return m, nil
}

// FromStrings parses a text maze, one string per row:
//
//	'#' wall, '.' open, 'S' start, 'G' goal
//
// Exactly one 'S' and one 'G' must appear. Returns ErrBadCell for any other
// rune, ErrMissingEndpoint / ErrDuplicateEndpoint for malformed endpoints,
// and the New validation errors for shape problems.
// Complexity: O(W×H).
func FromStrings(rows []string) (*GridMaze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	blocked := make([][]bool, len(rows))
	var start, goal Square
	var haveStart, haveGoal bool
	for r, row := range rows {
		cells := []rune(row)
		blocked[r] = make([]bool, len(cells))
		for c, ch := range cells {
			switch ch {
			case '#':
				blocked[r][c] = true
			case '.':
				// open
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateEndpoint, Sq(r, c))
				}
				start, haveStart = Sq(r, c), true
			case 'G':
				if haveGoal {
					return nil, fmt.Errorf("%w: second 'G' at %v", ErrDuplicateEndpoint, Sq(r, c))
				}
				goal, haveGoal = Sq(r, c), true
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, Sq(r, c))
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, ErrMissingEndpoint
	}

	return New(blocked, start, goal)
}

// Width returns the number of columns. Complexity: O(1).
func (m *GridMaze) Width() int { return m.width }

// Height returns the number of rows. Complexity: O(1).
func (m *GridMaze) Height() int { return m.height }

// InBounds reports whether s lies within the grid boundaries.
// Complexity: O(1).
func (m *GridMaze) InBounds(s Square) bool {
	return s.Row >= 0 && s.Row < m.height && s.Col >= 0 && s.Col < m.width
}

// IsBlocked reports whether s is a wall. Out-of-bounds squares are blocked.
// Complexity: O(1).
func (m *GridMaze) IsBlocked(s Square) bool {
	if !m.InBounds(s) {
		return true
	}

	return m.blocked[s.Row][s.Col]
}

// Start returns the entry square.
func (m *GridMaze) Start() Square { return m.start }

// Goal returns the target square.
func (m *GridMaze) Goal() Square { return m.goal }
