// Package astar implements the in-memory pathfinding core: building an
// adjacency list from a vertex/edge snapshot, nearest-vertex lookup and an A*
// shortest-path search with predecessor-walk reconstruction.
//
// Distances are Manhattan distances over raw degrees (|Δlat| + |Δlon|). This
// is an approximation that is only meaningful for small search radii, and as
// an A* heuristic it is admissible only when edge weights are at least the
// Manhattan distance between their endpoints.
//
// Every function allocates its own state; nothing is shared between calls,
// so concurrent queries need no locking.
package astar
