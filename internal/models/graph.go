package models

// Vertex es un nodo de la red vial con coordenadas geográficas.
type Vertex struct {
	ID        int64          `json:"id"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Data      map[string]any `json:"data,omitempty"`
}

// Edge es una conexión dirigida Source -> Target. Una calle de doble sentido
// necesita dos aristas.
type Edge struct {
	ID           int64          `json:"id"`
	Source       int64          `json:"source"`
	Target       int64          `json:"target"`
	Weight       float64        `json:"weight"`
	IsPedestrian bool           `json:"isPedestrian"`
	Data         map[string]any `json:"data,omitempty"`
}

type Neighbor struct {
	Vertex     Vertex
	Weight     float64
	Pedestrian bool
}

// Graph es la lista de adyacencia: id del vértice -> vecinos salientes.
type Graph map[int64][]Neighbor
