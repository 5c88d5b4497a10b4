package astar

import (
	"container/heap"

	"neo4j_routing/internal/models"
)

// Result is the outcome of a single search. Found is false and Path is empty
// when end is unreachable from start.
type Result struct {
	Path  []models.Vertex
	Cost  float64
	Found bool
}

// ShortestPath returns the vertices from start to end inclusive, or an empty
// slice when no path exists.
func ShortestPath(start, end models.Vertex, graph models.Graph) []models.Vertex {
	return Search(start, end, graph).Path
}

// Search runs A* from start to end over graph using the Manhattan distance to
// end as heuristic.
//
// The open set is a binary heap with lazy decrease-key: an improved vertex is
// pushed again and outdated entries are skipped when popped. Among open
// vertices with the same f-score the lowest id is expanded first.
func Search(start, end models.Vertex, graph models.Graph) Result {
	gScore := map[int64]float64{start.ID: 0}
	fScore := map[int64]float64{start.ID: heuristic(start, end)}
	previous := make(map[int64]models.Vertex)
	inOpen := map[int64]bool{start.ID: true}

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &item{vertex: start, fScore: fScore[start.ID]})

	for open.Len() > 0 {
		current := heap.Pop(open).(*item)
		id := current.vertex.ID
		if !inOpen[id] || current.fScore != fScore[id] {
			continue
		}

		if id == end.ID {
			return Result{
				Path:  Travel(current.vertex, previous, start),
				Cost:  gScore[id],
				Found: true,
			}
		}
		inOpen[id] = false

		for _, neighbor := range graph[id] {
			next := neighbor.Vertex.ID
			tentative := gScore[id] + neighbor.Weight

			if old, ok := gScore[next]; ok && tentative >= old {
				continue
			}
			previous[next] = current.vertex
			gScore[next] = tentative
			fScore[next] = tentative + heuristic(neighbor.Vertex, end)
			inOpen[next] = true
			heap.Push(open, &item{vertex: neighbor.Vertex, fScore: fScore[next]})
		}
	}

	return Result{Path: []models.Vertex{}}
}
