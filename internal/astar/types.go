package astar

import (
	"errors"
	"math"

	"neo4j_routing/internal/models"
)

var (
	// ErrEmptyGraph is returned when a query runs against an empty vertex set.
	ErrEmptyGraph = errors.New("astar: no vertices available")

	// ErrVertexNotFound is returned when a start or end id is absent from the snapshot.
	ErrVertexNotFound = errors.New("astar: vertex not found")
)

// EdgeFilter decides whether an edge takes part in the adjacency list.
type EdgeFilter func(models.Edge) bool

// VehicleOnly excludes pedestrian-only edges.
func VehicleOnly(e models.Edge) bool {
	return !e.IsPedestrian
}

// Manhattan returns |Δlatitude| + |Δlongitude| between two points.
func Manhattan(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Abs(lat1-lat2) + math.Abs(lon1-lon2)
}

func heuristic(a, b models.Vertex) float64 {
	return Manhattan(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}
