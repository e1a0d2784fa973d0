package sweep

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanting/fortune-voronoi/geometry"
)

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRunSingleSiteProducesNoOutput(t *testing.T) {
	sites := []geometry.Point{{X: 50, Y: 50}}
	d := New(sites, geometry.NewRect(100, 100), 1e-4, discardLogger())
	res, err := d.Run()
	require.NoError(t, err)
	require.Empty(t, res.Vertices)
	require.Empty(t, res.Edges)
}

func TestRunTwoSitesProducesOneEdge(t *testing.T) {
	sites := []geometry.Point{{X: 30, Y: 50}, {X: 70, Y: 50}}
	d := New(sites, geometry.NewRect(100, 100), 1e-4, discardLogger())
	res, err := d.Run()
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	require.Len(t, res.Vertices, 2)
}

func TestRunTriangleProducesSingleVertexSharedByThreeEdges(t *testing.T) {
	sites := []geometry.Point{{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 50, Y: 75}}
	bounds := geometry.NewRect(100, 100)
	d := New(sites, bounds, 1e-4, discardLogger())
	res, err := d.Run()
	require.NoError(t, err)
	require.Len(t, res.Edges, 3)

	center, err := geometry.CircumCenter(sites[0], sites[1], sites[2])
	require.NoError(t, err)

	count := 0
	for _, e := range res.Edges {
		for _, vi := range [2]int32{e.Vertex1, e.Vertex2} {
			if res.Vertices[vi].Dist(center) < 1e-6 {
				count++
			}
		}
	}
	require.Equal(t, 3, count, "the circumcenter must be named by all three edges")
}

func TestRunRejectsSiteQueueExhaustionGracefully(t *testing.T) {
	d := New(nil, geometry.NewRect(10, 10), 1e-4, discardLogger())
	_, err := d.Run()
	require.Error(t, err)
}
