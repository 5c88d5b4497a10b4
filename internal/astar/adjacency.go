package astar

import (
	"fmt"

	"neo4j_routing/internal/models"
)

// IndexVertices maps every vertex id to its vertex.
func IndexVertices(vertices []models.Vertex) map[int64]models.Vertex {
	index := make(map[int64]models.Vertex, len(vertices))
	for _, v := range vertices {
		index[v.ID] = v
	}
	return index
}

// FindVertex resolves id against an index built by IndexVertices.
func FindVertex(index map[int64]models.Vertex, id int64) (models.Vertex, error) {
	v, ok := index[id]
	if !ok {
		return models.Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	return v, nil
}

// BuildAdjacency construye la lista de adyacencia. Todo vértice recibe una
// lista vacía aunque no tenga aristas salientes. Las aristas cuyo origen o
// destino no existe se descartan sin error, y el orden de los vecinos sigue
// el orden de entrada de las aristas.
func BuildAdjacency(vertices []models.Vertex, edges []models.Edge, filter EdgeFilter) models.Graph {
	index := IndexVertices(vertices)

	graph := make(models.Graph, len(vertices))
	for _, v := range vertices {
		graph[v.ID] = []models.Neighbor{}
	}

	for _, e := range edges {
		if _, ok := index[e.Source]; !ok {
			continue
		}
		target, ok := index[e.Target]
		if !ok {
			continue
		}
		if filter != nil && !filter(e) {
			continue
		}
		graph[e.Source] = append(graph[e.Source], models.Neighbor{
			Vertex:     target,
			Weight:     e.Weight,
			Pedestrian: e.IsPedestrian,
		})
	}
	return graph
}
