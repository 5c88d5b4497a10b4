package repositories

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"neo4j_routing/internal/database"
	"neo4j_routing/internal/models"
)

const (
	vertexLabel = "Vertex"
	edgeType    = "EDGE"
)

// GraphStore is the read side of the external graph store. Each call returns
// the full current snapshot.
type GraphStore interface {
	FetchAllVertices(ctx context.Context) ([]models.Vertex, error)
	FetchAllEdges(ctx context.Context) ([]models.Edge, error)
}

// GraphRepository reads the routing graph stored in Neo4j as
// (:Vertex {id, latitude, longitude, data}) nodes joined by
// [:EDGE {id, weight, isPedestrian, data}] relationships.
type GraphRepository struct {
	Runner database.Runner
}

func NewGraphRepository(runner database.Runner) *GraphRepository {
	return &GraphRepository{Runner: runner}
}

// FetchAllVertices returns every vertex ordered by id.
func (r *GraphRepository) FetchAllVertices(ctx context.Context) ([]models.Vertex, error) {
	const op = "fetch vertices"

	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("v", vertexLabel)).
		Return("v").
		Build()
	if err != nil {
		return nil, decodeError(op, "could not build query: %v", err)
	}

	result, err := r.Runner.Run(ctx, query, params)
	if err != nil {
		return nil, classify(op, err)
	}

	vertices := make([]models.Vertex, 0, len(result.Records))
	for _, record := range result.Records {
		node, err := recordNode(record, "v")
		if err != nil {
			return nil, decodeError(op, "%v", err)
		}
		v, err := vertexFromNode(node)
		if err != nil {
			return nil, decodeError(op, "node %s: %v", node.ElementId, err)
		}
		vertices = append(vertices, v)
	}

	sort.SliceStable(vertices, func(i, j int) bool { return vertices[i].ID < vertices[j].ID })
	return vertices, nil
}

// FetchAllEdges returns every directed edge ordered by id. Source and target
// ids come from the endpoint nodes' "id" property. An edge whose properties
// cannot be decoded is logged and skipped, like a dangling edge.
func (r *GraphRepository) FetchAllEdges(ctx context.Context) ([]models.Edge, error) {
	const op = "fetch edges"

	query, params, err := gocypher.NewQueryBuilder().
		Match(
			gocypher.N("s", vertexLabel),
			gocypher.R("e", edgeType).To(),
			gocypher.N("t", vertexLabel),
		).
		Return("s", "e", "t").
		Build()
	if err != nil {
		return nil, decodeError(op, "could not build query: %v", err)
	}

	result, err := r.Runner.Run(ctx, query, params)
	if err != nil {
		return nil, classify(op, err)
	}

	edges := make([]models.Edge, 0, len(result.Records))
	for _, record := range result.Records {
		source, err := recordNode(record, "s")
		if err != nil {
			return nil, decodeError(op, "%v", err)
		}
		target, err := recordNode(record, "t")
		if err != nil {
			return nil, decodeError(op, "%v", err)
		}
		rel, err := recordRelationship(record, "e")
		if err != nil {
			return nil, decodeError(op, "%v", err)
		}

		e, err := edgeFromRelationship(source, rel, target)
		if err != nil {
			log.Printf("%s: skipping edge: %v", op, err)
			continue
		}
		edges = append(edges, e)
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges, nil
}

func recordNode(record *neo4j.Record, key string) (neo4j.Node, error) {
	value, ok := record.Get(key)
	if !ok {
		return neo4j.Node{}, errMissingKey(key)
	}
	node, ok := value.(neo4j.Node)
	if !ok {
		return neo4j.Node{}, errWrongKind(key, "node", value)
	}
	return node, nil
}

func recordRelationship(record *neo4j.Record, key string) (neo4j.Relationship, error) {
	value, ok := record.Get(key)
	if !ok {
		return neo4j.Relationship{}, errMissingKey(key)
	}
	rel, ok := value.(neo4j.Relationship)
	if !ok {
		return neo4j.Relationship{}, errWrongKind(key, "relationship", value)
	}
	return rel, nil
}

func vertexFromNode(node neo4j.Node) (models.Vertex, error) {
	id, err := propInt64(node.Props, "id")
	if err != nil {
		return models.Vertex{}, err
	}
	lat, err := propFloat64(node.Props, "latitude")
	if err != nil {
		return models.Vertex{}, err
	}
	lon, err := propFloat64(node.Props, "longitude")
	if err != nil {
		return models.Vertex{}, err
	}
	data, err := propData(node.Props)
	if err != nil {
		return models.Vertex{}, err
	}
	return models.Vertex{ID: id, Latitude: lat, Longitude: lon, Data: data}, nil
}

func edgeFromRelationship(source neo4j.Node, rel neo4j.Relationship, target neo4j.Node) (models.Edge, error) {
	id, err := propInt64(rel.Props, "id")
	if err != nil {
		return models.Edge{}, fmt.Errorf("relationship %s: %w", rel.ElementId, err)
	}
	sourceID, err := propInt64(source.Props, "id")
	if err != nil {
		return models.Edge{}, fmt.Errorf("source node %s of relationship %s: %w", source.ElementId, rel.ElementId, err)
	}
	targetID, err := propInt64(target.Props, "id")
	if err != nil {
		return models.Edge{}, fmt.Errorf("target node %s of relationship %s: %w", target.ElementId, rel.ElementId, err)
	}
	weight, err := propFloat64(rel.Props, "weight")
	if err != nil {
		return models.Edge{}, fmt.Errorf("relationship %s: %w", rel.ElementId, err)
	}
	// A* no termina con ciclos de peso negativo
	if weight < 0 || math.IsNaN(weight) {
		return models.Edge{}, fmt.Errorf("relationship %s: invalid weight %v", rel.ElementId, weight)
	}
	data, err := propData(rel.Props)
	if err != nil {
		return models.Edge{}, fmt.Errorf("relationship %s: %w", rel.ElementId, err)
	}
	return models.Edge{
		ID:           id,
		Source:       sourceID,
		Target:       targetID,
		Weight:       weight,
		IsPedestrian: propBool(rel.Props, "isPedestrian"),
		Data:         data,
	}, nil
}
