package astar

import (
	"neo4j_routing/internal/models"
)

// item representa un vértice en la cola de prioridad.
type item struct {
	vertex models.Vertex
	fScore float64
	index  int
}

// openSet implementa heap.Interface. Ordena por f-score y, a igualdad, por
// id de vértice, así la búsqueda es reproducible.
type openSet []*item

func (pq openSet) Len() int { return len(pq) }

func (pq openSet) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}
	return pq[i].vertex.ID < pq[j].vertex.ID
}

func (pq openSet) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openSet) Push(x any) {
	n := len(*pq)
	it := x.(*item)
	it.index = n
	*pq = append(*pq, it)
}

func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // evitar fugas de memoria
	it.index = -1
	*pq = old[0 : n-1]
	return it
}
