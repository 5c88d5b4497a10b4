package astar

import (
	"neo4j_routing/internal/models"
)

// Travel reconstruye el camino desde los predecesores: recorre hacia atrás
// desde end mientras exista predecesor y al final antepone start.
// Sólo debe llamarse cuando la búsqueda encontró un camino.
func Travel(end models.Vertex, previous map[int64]models.Vertex, start models.Vertex) []models.Vertex {
	var path []models.Vertex
	current := end

	for {
		predecessor, ok := previous[current.ID]
		if !ok {
			break
		}
		path = append([]models.Vertex{current}, path...)
		if len(path) > len(previous) {
			// ciclo en la tabla de predecesores
			return []models.Vertex{}
		}
		current = predecessor
	}

	return append([]models.Vertex{start}, path...)
}
