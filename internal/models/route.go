package models

// Route es el resultado de una búsqueda de camino. Path vacío y Found=false
// significa que no existe camino; no es un error.
type Route struct {
	Path  []Vertex `json:"path"`
	Cost  float64  `json:"cost"`
	Found bool     `json:"found"`
}

type Reachability struct {
	Start       int64   `json:"start"`
	Reachable   []int64 `json:"reachable"`
	Unreachable []int64 `json:"unreachable"`
}
