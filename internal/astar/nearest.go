package astar

import (
	"math"

	"neo4j_routing/internal/models"
)

// NearestVertex returns the vertex with the smallest Manhattan distance to
// (lat, lon). On ties the earliest vertex in input order wins.
func NearestVertex(lat, lon float64, vertices []models.Vertex) (models.Vertex, error) {
	if len(vertices) == 0 {
		return models.Vertex{}, ErrEmptyGraph
	}

	nearest := vertices[0]
	minDistance := math.Inf(1)
	for _, v := range vertices {
		d := Manhattan(lat, lon, v.Latitude, v.Longitude)
		if d < minDistance {
			minDistance = d
			nearest = v
		}
	}
	return nearest, nil
}
