package repositories

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	result *neo4j.EagerResult
	err    error
	query  string
}

func (f *fakeRunner) Run(_ context.Context, query string, _ map[string]any) (*neo4j.EagerResult, error) {
	f.query = query
	return f.result, f.err
}

func node(id string, props map[string]any) neo4j.Node {
	return neo4j.Node{ElementId: id, Labels: []string{vertexLabel}, Props: props}
}

func rel(id string, props map[string]any) neo4j.Relationship {
	return neo4j.Relationship{ElementId: id, Type: edgeType, Props: props}
}

func records(keys []string, rows ...[]any) *neo4j.EagerResult {
	res := &neo4j.EagerResult{Keys: keys}
	for _, row := range rows {
		res.Records = append(res.Records, &neo4j.Record{Keys: keys, Values: row})
	}
	return res
}

func TestFetchAllVertices(t *testing.T) {
	runner := &fakeRunner{result: records([]string{"v"},
		[]any{node("n2", map[string]any{"id": int64(2), "latitude": 0.0, "longitude": int64(1)})},
		[]any{node("n1", map[string]any{"id": int64(1), "latitude": 0.5, "longitude": 0.25, "data": `{"name":"A"}`})},
	)}

	vertices, err := NewGraphRepository(runner).FetchAllVertices(context.Background())
	require.NoError(t, err)
	require.Len(t, vertices, 2)

	assert.Equal(t, int64(1), vertices[0].ID)
	assert.Equal(t, 0.5, vertices[0].Latitude)
	assert.Equal(t, "A", vertices[0].Data["name"])
	assert.Equal(t, int64(2), vertices[1].ID)
	assert.Equal(t, 1.0, vertices[1].Longitude)
	assert.Nil(t, vertices[1].Data)
	assert.Contains(t, runner.query, "Vertex")
}

func TestFetchAllVertices_BadRecord(t *testing.T) {
	runner := &fakeRunner{result: records([]string{"v"},
		[]any{node("n1", map[string]any{"id": "one", "latitude": 0.0, "longitude": 0.0})},
	)}

	_, err := NewGraphRepository(runner).FetchAllVertices(context.Background())
	assert.ErrorIs(t, err, ErrStoreQueryFailed)
}

func TestFetchAllVertices_DriverError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("syntax error")}

	_, err := NewGraphRepository(runner).FetchAllVertices(context.Background())
	assert.ErrorIs(t, err, ErrStoreQueryFailed)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}

func TestFetchAllEdges_ConnectivityError(t *testing.T) {
	runner := &fakeRunner{err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}

	_, err := NewGraphRepository(runner).FetchAllEdges(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFetchAllEdges(t *testing.T) {
	a := node("n1", map[string]any{"id": int64(1)})
	b := node("n2", map[string]any{"id": int64(2)})
	runner := &fakeRunner{result: records([]string{"s", "e", "t"},
		[]any{b, rel("r2", map[string]any{"id": int64(8), "weight": int64(3)}), a},
		[]any{a, rel("r1", map[string]any{"id": int64(7), "weight": 1.5, "isPedestrian": true}), b},
	)}

	edges, err := NewGraphRepository(runner).FetchAllEdges(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 2)

	assert.Equal(t, int64(7), edges[0].ID)
	assert.Equal(t, int64(1), edges[0].Source)
	assert.Equal(t, int64(2), edges[0].Target)
	assert.Equal(t, 1.5, edges[0].Weight)
	assert.True(t, edges[0].IsPedestrian)

	assert.Equal(t, int64(2), edges[1].Source)
	assert.Equal(t, 3.0, edges[1].Weight)
	assert.False(t, edges[1].IsPedestrian)
}

func TestFetchAllEdges_NegativeWeightIsSkipped(t *testing.T) {
	a := node("n1", map[string]any{"id": int64(1)})
	runner := &fakeRunner{result: records([]string{"s", "e", "t"},
		[]any{a, rel("r1", map[string]any{"id": int64(1), "weight": -2.0}), a},
	)}

	edges, err := NewGraphRepository(runner).FetchAllEdges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestFetchAllEdges_MalformedEdgeIsSkipped(t *testing.T) {
	a := node("n1", map[string]any{"id": int64(1)})
	b := node("n2", map[string]any{"id": int64(2)})
	noID := node("n3", map[string]any{"latitude": 0.0})
	runner := &fakeRunner{result: records([]string{"s", "e", "t"},
		[]any{a, rel("r1", map[string]any{"id": int64(1), "weight": 1.0}), b},
		[]any{a, rel("r2", map[string]any{"id": int64(2), "weight": 1.0}), noID},
		[]any{b, rel("r3", map[string]any{"weight": 1.0}), a},
		[]any{b, rel("r4", map[string]any{"id": int64(4), "weight": "far"}), a},
	)}

	edges, err := NewGraphRepository(runner).FetchAllEdges(context.Background())
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, int64(1), edges[0].ID)
	assert.Contains(t, runner.query, "Vertex")
}

func TestFetchAllEdges_MissingReturnKey(t *testing.T) {
	a := node("n1", map[string]any{"id": int64(1)})
	runner := &fakeRunner{result: records([]string{"s", "e"},
		[]any{a, rel("r1", map[string]any{"id": int64(1), "weight": 1.0})},
	)}

	_, err := NewGraphRepository(runner).FetchAllEdges(context.Background())
	assert.ErrorIs(t, err, ErrStoreQueryFailed)
}

func TestEdgeFromRelationship_NamesFailingEntity(t *testing.T) {
	a := node("n1", map[string]any{"id": int64(1)})
	noID := node("n3", map[string]any{})
	r := rel("r2", map[string]any{"id": int64(2), "weight": 1.0})

	_, err := edgeFromRelationship(a, r, noID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target node n3")

	_, err = edgeFromRelationship(noID, r, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source node n3")
}

func TestPropInt64(t *testing.T) {
	id, err := propInt64(map[string]any{"id": 3.0}, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	for _, v := range []any{1.7, math.NaN(), math.Inf(1), "1"} {
		_, err := propInt64(map[string]any{"id": v}, "id")
		assert.Error(t, err, "%v", v)
	}

	_, err = propInt64(map[string]any{}, "id")
	assert.Error(t, err)
}

func TestRouteRepository_FindAll(t *testing.T) {
	runner := &fakeRunner{result: records([]string{"id", "description", "vertices"},
		[]any{int64(1), "Linea 1", []any{int64(1), int64(2), int64(3)}},
		[]any{int64(2), nil, []any{}},
	)}

	routes, err := NewRouteRepository(runner).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, []int64{1, 2, 3}, routes[0].Vertices)
	assert.Equal(t, "Linea 1", routes[0].Description)
	assert.Equal(t, "Not Defined", routes[1].Description)
	assert.Empty(t, routes[1].Vertices)
}
