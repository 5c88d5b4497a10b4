package astar

import (
	"sort"

	"neo4j_routing/internal/models"
)

// Reachable splits the vertices of graph into those reachable from start by
// following directed edges and those that are not. Both slices are sorted by
// id. If start is not in graph every vertex is unreachable.
func Reachable(graph models.Graph, start int64) ([]int64, []int64) {
	if len(graph) == 0 {
		return []int64{}, []int64{}
	}

	visited := make(map[int64]bool)
	if _, ok := graph[start]; ok {
		queue := []int64{start}
		visited[start] = true

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, neighbor := range graph[current] {
				if !visited[neighbor.Vertex.ID] {
					visited[neighbor.Vertex.ID] = true
					queue = append(queue, neighbor.Vertex.ID)
				}
			}
		}
	}

	reachable := []int64{}
	unreachable := []int64{}
	for node := range graph {
		if visited[node] {
			reachable = append(reachable, node)
		} else {
			unreachable = append(unreachable, node)
		}
	}
	sort.Slice(reachable, func(i, j int) bool { return reachable[i] < reachable[j] })
	sort.Slice(unreachable, func(i, j int) bool { return unreachable[i] < unreachable[j] })
	return reachable, unreachable
}
