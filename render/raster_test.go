package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	voronoi "github.com/hanting/fortune-voronoi"
	"github.com/hanting/fortune-voronoi/geometry"
)

func buildDiagram(t *testing.T) *voronoi.Diagram {
	t.Helper()
	sites := []geometry.Point{{X: 10, Y: 10}, {X: 40, Y: 20}, {X: 20, Y: 40}}
	d, err := voronoi.Build(sites, geometry.NewRect(60, 60))
	require.NoError(t, err)
	return d
}

func TestRasterizeProducesNonEmptyCanvas(t *testing.T) {
	d := buildDiagram(t)
	img := Rasterize(d, 4)
	require.Greater(t, img.Bounds().Dx(), 0)
	require.Greater(t, img.Bounds().Dy(), 0)
}

func TestEncodePNGWritesBytes(t *testing.T) {
	d := buildDiagram(t)
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, d, 4))
	require.Greater(t, buf.Len(), 0)
}

func TestEncodeGIFWritesBytes(t *testing.T) {
	d := buildDiagram(t)
	var buf bytes.Buffer
	require.NoError(t, EncodeGIF(&buf, []*voronoi.Diagram{d, d}, 4, 10))
	require.Greater(t, buf.Len(), 0)
}

func TestEncodeGIFRejectsEmptyFrames(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, EncodeGIF(&buf, nil, 4, 10))
}
