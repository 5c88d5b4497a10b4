// models/bus_route.go
package models

type BusRoute struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Vertices    []int64 `json:"vertices"`
}
