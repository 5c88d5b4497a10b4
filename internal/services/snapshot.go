package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"neo4j_routing/internal/models"
	"neo4j_routing/internal/repositories"
)

// snapshot is one consistent read of the graph store. Never mutated.
type snapshot struct {
	vertices []models.Vertex
	edges    []models.Edge
}

// fetchSnapshot reads vertices and edges in parallel. The first failure
// cancels the other read.
func fetchSnapshot(ctx context.Context, store repositories.GraphStore) (*snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	snap := &snapshot{}
	g.Go(func() error {
		vertices, err := store.FetchAllVertices(ctx)
		snap.vertices = vertices
		return err
	})
	g.Go(func() error {
		edges, err := store.FetchAllEdges(ctx)
		snap.edges = edges
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	snapshotLoads.WithLabelValues("store").Inc()
	return snap, nil
}

// sharedFetchTimeout bounds a store read shared by several callers. It does
// not depend on any single caller's deadline.
const sharedFetchTimeout = 30 * time.Second

// snapshotCache keeps the last snapshot for ttl. Concurrent misses share a
// single store read, detached from the caller that started it; each caller
// still gives up on its own context.
type snapshotCache struct {
	store        repositories.GraphStore
	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	mu       sync.Mutex
	current  *snapshot
	loadedAt time.Time

	group singleflight.Group
}

func newSnapshotCache(store repositories.GraphStore, ttl time.Duration) *snapshotCache {
	return &snapshotCache{store: store, ttl: ttl, fetchTimeout: sharedFetchTimeout, now: time.Now}
}

func (c *snapshotCache) get(ctx context.Context) (*snapshot, error) {
	c.mu.Lock()
	if c.current != nil && c.now().Sub(c.loadedAt) < c.ttl {
		snap := c.current
		c.mu.Unlock()
		snapshotLoads.WithLabelValues("cache").Inc()
		return snap, nil
	}
	c.mu.Unlock()

	ch := c.group.DoChan("snapshot", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		snap, err := fetchSnapshot(fetchCtx, c.store)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.current = snap
		c.loadedAt = c.now()
		c.mu.Unlock()
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*snapshot), nil
	}
}
