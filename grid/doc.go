// Package grid models a square N×N board and the paths drawn on it.
//
// What:
//
//   - Grid wraps a board side length N and answers geometry queries:
//     bounds checks, orthogonal neighbors, row-major index mapping.
//   - Position is a cell coordinate; Path is an ordered cell sequence.
//   - All types are plain values; Grid is immutable once constructed.
//
// Why:
//
//   - Every other zipgrid package (hampath, dots, puzzle, play) speaks in
//     these primitives, so they live in one dependency-free home.
//
// Complexity:
//
//   - InBounds / Index / At:       O(1).
//   - Neighbors4 / AppendNeighbors4: O(1) (at most four candidates).
//   - Path.Contains / Path.IndexOf:  O(len(path)) linear scans.
//
// Errors:
//
//   - ErrGridSize: requested side length is below 1.
package grid
