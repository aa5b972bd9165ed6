// SPDX-License-Identifier: MIT

// Package shortestpath runs single-source Dijkstra over a dense weight
// matrix and returns distances plus a parent tree.
//
// The engine is tuned for small, bounded drawings rather than large graphs:
// instead of a heap it scans the unvisited nodes in ascending index order on
// every iteration and takes the first node holding the minimum cost. That
// scan is also the tie-break policy: among equal-cost candidates the lowest
// index is always visited first, so results are fully deterministic.
//
// Parent encoding:
//
//   - ParentSource  the node is the query source.
//   - ParentNone    the node is unreachable from the source.
//   - otherwise     the predecessor on the chosen shortest path.
//
// Complexity:
//
//   - Time:  O(n²)
//   - Space: O(n) beyond the matrix.
//
// Errors:
//
//   - ErrInvalidSource  source outside [0, n), which includes any source
//     queried after the drawing was reset.
//   - ErrUnreachable    Result.Path for a node with no path.
package shortestpath
