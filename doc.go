// Package amaze is a small, deterministic A* maze solver for 4-connected
// grids with unit step cost and the L1 (Manhattan) heuristic.
//
// 🚀 What is amaze?
//
//	A focused, zero-runtime-dependency library that brings together:
//		• Grid primitives: immutable Square coordinates, validated GridMaze
//		• Text mazes: build fixtures straight from ASCII sketches
//		• A* search: strict (f, h, row, column) expansion order, fully
//		  deterministic pop sequence, first-discovery-wins routing
//		• Observation hooks: watch every enqueue and expansion as it happens
//
// ✨ Why choose amaze?
//
//   - Deterministic – the same maze always yields the same path and explored set
//   - Honest failures – an unreachable goal is a result, not an error
//   - Pure Go – no cgo, no hidden deps
//   - Teachable – the frontier/parent-map/explored-set machinery is observable
//
// Everything is organized under two subpackages:
//
//	maze/  — Square, the Maze interface, GridMaze construction & parsing
//	astar/ — the solver: Solve, Options, Result
//
// Quick ASCII example:
//
//	S . .        found: true
//	. # .   →    path: (0,1) (0,2) (1,2)
//	. . G
//
// Start with maze.FromStrings to sketch a grid, then astar.Solve to search it.
package amaze
