// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/amaze/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromStrings
////////////////////////////////////////////////////////////////////////////////

// ExampleFromStrings demonstrates turning an ASCII sketch into a validated
// maze: '#' walls, '.' open floor, one 'S' start, one 'G' goal.
func ExampleFromStrings() {
	m, err := maze.FromStrings([]string{
		"S.#.",
		"..#.",
		"...G",
	})
	if err != nil {
		fmt.Println("parse failed:", err)

		return
	}

	fmt.Printf("grid: %d×%d\n", m.Width(), m.Height())
	fmt.Println("start:", m.Start())
	fmt.Println("goal:", m.Goal())
	fmt.Println("wall at (0,2):", m.IsBlocked(maze.Sq(0, 2)))
	fmt.Println("outside is blocked:", m.IsBlocked(maze.Sq(-1, 0)))

	// Output:
	// grid: 4×3
	// start: (0,0)
	// goal: (2,3)
	// wall at (0,2): true
	// outside is blocked: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Square.ManhattanDistance
////////////////////////////////////////////////////////////////////////////////

// ExampleSquare_ManhattanDistance shows the L1 heuristic distance between
// two squares, ignoring any walls between them.
func ExampleSquare_ManhattanDistance() {
	a, b := maze.Sq(0, 0), maze.Sq(2, 3)
	fmt.Println(a.ManhattanDistance(b))

	// Output:
	// 5
}
