// Package maze models a static, 4-connected rectangular grid with walls,
// a start square, and a goal square.
//
// What:
//
//   - Square: an immutable (row, column) coordinate with value equality,
//     usable directly as a map key.
//   - Maze: the read-only interface the solver consumes (bounds, wall test,
//     start, goal).
//   - GridMaze: a concrete Maze over a [][]bool wall grid, buildable from
//     slices (New) or from text rows (FromStrings).
//
// Why:
//
//   - Pathfinding inputs: the astar package searches any Maze implementation.
//   - Test fixtures: FromStrings turns an ASCII sketch into a validated maze.
//
// Invariants (enforced at construction):
//
//   - The grid is non-empty and rectangular.
//   - Start and goal are in-bounds, unblocked, and distinct.
//   - A GridMaze never changes after New returns; concurrent readers are safe.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed grid shape.
//   - ErrOutOfBounds, ErrBlockedEndpoint, ErrStartIsGoal: bad endpoints.
//   - ErrBadCell, ErrMissingEndpoint, ErrDuplicateEndpoint: text parse faults.
package maze
