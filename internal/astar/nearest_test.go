package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neo4j_routing/internal/astar"
	"neo4j_routing/internal/models"
)

func TestNearestVertex_Scenario(t *testing.T) {
	v, err := astar.NearestVertex(0.1, 0.1, []models.Vertex{vA, vB, vC})
	require.NoError(t, err)
	assert.Equal(t, vA, v)
}

func TestNearestVertex_Empty(t *testing.T) {
	_, err := astar.NearestVertex(0, 0, nil)
	assert.ErrorIs(t, err, astar.ErrEmptyGraph)
}

func TestNearestVertex_TieKeepsFirst(t *testing.T) {
	first := models.Vertex{ID: 9, Latitude: 1, Longitude: 0}
	second := models.Vertex{ID: 2, Latitude: 0, Longitude: 1}

	v, err := astar.NearestVertex(0, 0, []models.Vertex{first, second})
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.ID)
}

func TestNearestVertex_NotWorseThanAnyOther(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		vertices := make([]models.Vertex, 1+rng.Intn(20))
		for i := range vertices {
			vertices[i] = models.Vertex{ID: int64(i), Latitude: float64(rng.Intn(5)), Longitude: float64(rng.Intn(5))}
		}
		lat, lon := float64(rng.Intn(5)), float64(rng.Intn(5))

		got, err := astar.NearestVertex(lat, lon, vertices)
		require.NoError(t, err)
		best := astar.Manhattan(lat, lon, got.Latitude, got.Longitude)
		for i, v := range vertices {
			d := astar.Manhattan(lat, lon, v.Latitude, v.Longitude)
			assert.LessOrEqual(t, best, d)
			if d == best {
				// earliest index among the minima
				assert.Equal(t, v.ID, got.ID, "round %d index %d", round, i)
				break
			}
		}
	}
}
