package lloyd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	voronoi "github.com/hanting/fortune-voronoi"
	"github.com/hanting/fortune-voronoi/geometry"
)

func square() (sites []geometry.Point, bounds geometry.Rect) {
	return []geometry.Point{
		{X: 10, Y: 10},
		{X: 90, Y: 10},
		{X: 90, Y: 90},
		{X: 10, Y: 90},
		{X: 50, Y: 50},
	}, geometry.NewRect(100, 100)
}

func TestRelaxStaysInBounds(t *testing.T) {
	sites, bounds := square()
	next, d, err := Relax(sites, bounds, CentroidPredicate, nil)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Len(t, next, len(sites))
	for _, p := range next {
		require.True(t, bounds.Contains(p))
	}
}

func TestIterateReturnsFinalSitesAndDiagram(t *testing.T) {
	sites, bounds := square()
	final, d, err := Iterate(sites, bounds, 5, CentroidPredicate, nil)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Len(t, final, len(sites))
}

func TestCentroidPredicateEmptyCellReturnsSite(t *testing.T) {
	site := geometry.Point{X: 3, Y: 4}
	got := CentroidPredicate(site, nil, nil)
	require.Equal(t, site, got)
}

func TestWithJitterKeepsSitesInBounds(t *testing.T) {
	sites, bounds := square()
	rng := rand.New(rand.NewSource(1))
	next, _, err := Relax(sites, bounds, CentroidPredicate, nil, WithJitter(50, rng))
	require.NoError(t, err)
	require.Len(t, next, len(sites))
	for _, p := range next {
		require.True(t, bounds.Contains(p))
	}
}

func TestRelaxRejectsInvalidInput(t *testing.T) {
	_, _, err := Relax(nil, geometry.NewRect(10, 10), CentroidPredicate, nil)
	require.ErrorIs(t, err, voronoi.ErrNoSites)
}
