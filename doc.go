// Package zipgrid generates and referees zip-style path puzzles: numbered
// dots on an N×N board, one unbroken line through every cell.
//
// 🚀 What is zipgrid?
//
//	A small engine covering the whole life of a puzzle:
//		• Board geometry: cells, 4-neighborhoods, corners (grid)
//		• Path carving: randomized Hamiltonian-path search with five
//		  ordering strategies, deadlines and hooks (hampath)
//		• Dot placement: evenly spaced, jittered checkpoints (dots)
//		• Assembly: multi-attempt generation, structural gates, a
//		  deterministic fallback board (puzzle)
//		• Refereeing: interactive sessions with scoped backtracking,
//		  win detection and hints (play)
//
// ✨ Why choose zipgrid?
//
//   - Deterministic when you need it – seed any entrypoint and replay it
//   - Honest randomness when you don't – fresh boards on every run
//   - Rule-complete – every rejected move names its sentinel
//   - Host-agnostic – no rendering, no input handling, just the rules
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/    — positions, paths, board geometry
//	hampath/ — Hamiltonian covering-path search
//	dots/    — checkpoint selection along a path
//	puzzle/  — generation, fallback, validation
//	play/    — drawing sessions, backtracking scope, hints
//
// Quick ASCII example:
//
//	    1 · 2
//	    · 3 ·
//	    · · 4
//
//	a 3×3 board: draw one line from dot 1 through 2 and 3 to dot 4,
//	covering all nine cells.
//
//	go get github.com/katalvlaran/zipgrid
package zipgrid
