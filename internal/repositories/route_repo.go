package repositories

import (
	"context"

	"neo4j_routing/internal/database"
	"neo4j_routing/internal/models"
)

// RouteRepository handles read operations on bus route metadata.
type RouteRepository struct {
	Runner database.Runner
}

// NewRouteRepository creates a new instance of RouteRepository.
func NewRouteRepository(runner database.Runner) *RouteRepository {
	return &RouteRepository{Runner: runner}
}

// FindAll retrieves every bus route with the ids of the vertices it visits,
// in stop order.
func (r *RouteRepository) FindAll(ctx context.Context) ([]models.BusRoute, error) {
	const op = "fetch bus routes"

	query := `
	MATCH (r:BusRoute)
	OPTIONAL MATCH (r)-[u:USES]->(v:Vertex)
	WITH r, u, v
	ORDER BY r.id, u.seq
	RETURN r.id AS id, r.description AS description, collect(v.id) AS vertices
	ORDER BY id
	`
	result, err := r.Runner.Run(ctx, query, nil)
	if err != nil {
		return nil, classify(op, err)
	}

	routes := make([]models.BusRoute, 0, len(result.Records))
	for _, record := range result.Records {
		props := map[string]any{}
		for i, key := range record.Keys {
			props[key] = record.Values[i]
		}

		id, err := propInt64(props, "id")
		if err != nil {
			return nil, decodeError(op, "%v", err)
		}
		description := "Not Defined"
		if d, ok := props["description"].(string); ok && d != "" {
			description = d
		}

		vertices := []int64{}
		raw, _ := props["vertices"].([]any)
		for _, value := range raw {
			vid, ok := value.(int64)
			if !ok {
				return nil, decodeError(op, "route %d: vertex id has type %T", id, value)
			}
			vertices = append(vertices, vid)
		}

		routes = append(routes, models.BusRoute{ID: id, Description: description, Vertices: vertices})
	}
	return routes, nil
}
