// File: astar/example_test.go
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/amaze/astar"
	"github.com/katalvlaran/amaze/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve demonstrates solving a small maze with one interior wall.
// Scenario:
//
//   - 'S' start at (0,0), 'G' goal at (2,2), '#' wall at (1,1)
//   - f ties break on h, then row, then column, so the solver hugs row 0
//     before descending along the right edge
//   - Path excludes both endpoints
//
// Complexity: O(W·H·log(W·H))
func ExampleSolve() {
	m, _ := maze.FromStrings([]string{
		"S..",
		".#.",
		"..G",
	})

	res, _ := astar.Solve(m)
	fmt.Println("found:", res.Found)
	fmt.Print("path:")
	for _, s := range res.Path {
		fmt.Printf(" %v", s)
	}
	fmt.Println()
	fmt.Println("expanded:", len(res.Explored))

	// Output:
	// found: true
	// path: (0,1) (0,2) (1,2)
	// expanded: 3
}

////////////////////////////////////////////////////////////////////////////////
// Example: Solve with no connecting path
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_noPath demonstrates that an unreachable goal is a valid
// outcome, not an error: the solver exhausts the frontier and reports
// Found == false with the explored snapshot intact.
func ExampleSolve_noPath() {
	m, _ := maze.FromStrings([]string{
		"S.#G",
		"..#.",
	})

	res, err := astar.Solve(m)
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found)
	fmt.Println("expanded:", len(res.Explored))

	// Output:
	// err: <nil>
	// found: false
	// expanded: 3
}
