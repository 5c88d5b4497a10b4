package services

import (
	"context"
	"time"

	"neo4j_routing/internal/astar"
	"neo4j_routing/internal/models"
	"neo4j_routing/internal/repositories"
)

// BusRouteFinder lists bus route metadata.
type BusRouteFinder interface {
	FindAll(ctx context.Context) ([]models.BusRoute, error)
}

// PathOptions ajusta qué aristas participan en la búsqueda.
type PathOptions struct {
	// VehicleOnly excluye las aristas peatonales.
	VehicleOnly bool
}

func (o PathOptions) filter() astar.EdgeFilter {
	if o.VehicleOnly {
		return astar.VehicleOnly
	}
	return nil
}

// RouteService answers nearest-vertex and shortest-path queries. Construct it
// once at startup and share it between requests: it keeps no per-query state.
type RouteService struct {
	Store     repositories.GraphStore
	BusRoutes BusRouteFinder

	cache *snapshotCache
}

// NewRouteService creates the service. A positive cacheTTL reuses store
// snapshots for that long; zero reads the store on every query.
func NewRouteService(store repositories.GraphStore, busRoutes BusRouteFinder, cacheTTL time.Duration) *RouteService {
	s := &RouteService{Store: store, BusRoutes: busRoutes}
	if cacheTTL > 0 {
		s.cache = newSnapshotCache(store, cacheTTL)
	}
	return s
}

func (s *RouteService) snapshot(ctx context.Context) (*snapshot, error) {
	if s.cache != nil {
		return s.cache.get(ctx)
	}
	return fetchSnapshot(ctx, s.Store)
}

func (s *RouteService) vertices(ctx context.Context) ([]models.Vertex, error) {
	if s.cache != nil {
		snap, err := s.cache.get(ctx)
		if err != nil {
			return nil, err
		}
		return snap.vertices, nil
	}
	return s.Store.FetchAllVertices(ctx)
}

// NearestVertex returns the vertex closest to (lat, lon) by Manhattan
// distance. Fails with astar.ErrEmptyGraph when the store has no vertices.
func (s *RouteService) NearestVertex(ctx context.Context, lat, lon float64) (v models.Vertex, err error) {
	defer observe(kindNearest, time.Now(), &err, nil)

	vertices, err := s.vertices(ctx)
	if err != nil {
		return models.Vertex{}, err
	}
	return astar.NearestVertex(lat, lon, vertices)
}

// ShortestPath runs A* between two vertex ids. Unknown ids fail with
// astar.ErrVertexNotFound; an unreachable end yields a Route with an empty
// Path and Found=false.
func (s *RouteService) ShortestPath(ctx context.Context, startID, endID int64, opts PathOptions) (route models.Route, err error) {
	defer observe(kindPath, time.Now(), &err, &route.Found)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return models.Route{}, err
	}

	index := astar.IndexVertices(snap.vertices)
	start, err := astar.FindVertex(index, startID)
	if err != nil {
		return models.Route{}, err
	}
	end, err := astar.FindVertex(index, endID)
	if err != nil {
		return models.Route{}, err
	}

	graph := astar.BuildAdjacency(snap.vertices, snap.edges, opts.filter())
	res := astar.Search(start, end, graph)
	return models.Route{Path: res.Path, Cost: res.Cost, Found: res.Found}, nil
}

// Reachable lists which vertices can be reached from startID.
func (s *RouteService) Reachable(ctx context.Context, startID int64, opts PathOptions) (r models.Reachability, err error) {
	defer observe(kindReachable, time.Now(), &err, nil)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return models.Reachability{}, err
	}
	if _, err := astar.FindVertex(astar.IndexVertices(snap.vertices), startID); err != nil {
		return models.Reachability{}, err
	}

	graph := astar.BuildAdjacency(snap.vertices, snap.edges, opts.filter())
	reachable, unreachable := astar.Reachable(graph, startID)
	return models.Reachability{Start: startID, Reachable: reachable, Unreachable: unreachable}, nil
}

func (s *RouteService) ListBusRoutes(ctx context.Context) ([]models.BusRoute, error) {
	return s.BusRoutes.FindAll(ctx)
}

func observe(kind string, began time.Time, err *error, found *bool) {
	queryDuration.WithLabelValues(kind).Observe(time.Since(began).Seconds())
	outcome := outcomeOK
	switch {
	case *err != nil:
		outcome = outcomeError
	case found != nil && !*found:
		outcome = outcomeNoPath
	}
	queryTotal.WithLabelValues(kind, outcome).Inc()
}
