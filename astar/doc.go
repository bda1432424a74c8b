// Package astar solves single start→goal queries over 4-connected mazes
// using A* search with the L1 (Manhattan) heuristic.
//
// What:
//
//   - Solve runs one deterministic search over any maze.Maze and returns a
//     Result: the path strictly between start and goal, the explored-square
//     snapshot, and the pop count.
//   - Expansion order is the strict total order (f, h, row, column),
//     smallest first, with f = g + h.
//   - First-discovery-wins: the first route found to a square is kept; no
//     relaxation of frontier or explored squares.
//
// Why:
//
//   - Grid pathfinding: mazes, tile maps, unit-cost navigation.
//   - Teaching: the frontier/parent-map/explored-set state machine is exposed
//     through OnEnqueue/OnExpand hooks for step-by-step observation.
//
// Complexity:
//
//   - Time:  O(W×H log(W×H)), each square pushed at most once.
//   - Space: O(W×H) for frontier, parent map, and explored set.
//
// Options:
//
//   - WithStepLimit(n): defensive budget on frontier pops.
//   - WithOnEnqueue(fn), WithOnExpand(fn): observation hooks.
//
// Errors:
//
//   - ErrNilMaze, ErrInvalidMaze: rejected inputs, before any search.
//   - ErrBadStepLimit: invalid option value.
//   - ErrCorruptParentChain: broken internal invariant; fatal, never expected.
//
// A maze with no connecting path is not an error: Solve returns a
// Found == false Result with the explored snapshot intact.
package astar
