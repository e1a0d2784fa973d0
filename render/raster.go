// Package render rasterizes a Diagram into a paletted raster image and
// encodes it as PNG or an animated GIF (§13), the visual counterpart to
// the reference Lloyd.cpp driver's companion image output.
package render

import (
	"image"
	"image/color"
	"math"

	voronoi "github.com/hanting/fortune-voronoi"
	"github.com/hanting/fortune-voronoi/geometry"
)

// palette assigns a distinct color to every site index, cycling once it
// runs out — sites are drawn as filled points and edges as a contrasting
// foreground line, so collisions between a site's unique color and the
// edge color are the only thing that matters here.
var palette = color.Palette{
	color.White,
	color.Black,
	color.RGBA{220, 50, 32, 255},
	color.RGBA{0, 90, 181, 255},
	color.RGBA{0, 137, 65, 255},
	color.RGBA{230, 159, 0, 255},
	color.RGBA{86, 180, 233, 255},
	color.RGBA{204, 121, 167, 255},
}

const (
	colorBackground = 0
	colorEdge       = 1
	colorSiteOffset = 2
)

// Rasterize draws d onto a canvas scale pixels per diagram unit: edges in
// the foreground color, sites as small filled squares in a color cycling
// through the palette.
func Rasterize(d *voronoi.Diagram, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	w := int(math.Ceil(d.Bounds.RT.X-d.Bounds.LB.X)) * scale
	h := int(math.Ceil(d.Bounds.RT.Y-d.Bounds.LB.Y)) * scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for i := range img.Pix {
		img.Pix[i] = colorBackground
	}

	toPixel := func(p geometry.Point) (int, int) {
		x := int((p.X - d.Bounds.LB.X) * float64(scale))
		y := int((d.Bounds.RT.Y - p.Y) * float64(scale))
		return x, y
	}

	for _, e := range d.Edges {
		x0, y0 := toPixel(d.Vertices[e.Vertex1])
		x1, y1 := toPixel(d.Vertices[e.Vertex2])
		drawLine(img, x0, y0, x1, y1, colorEdge)
	}

	for i, s := range d.Sites {
		x, y := toPixel(s)
		c := uint8(colorSiteOffset + i%(len(palette)-colorSiteOffset))
		drawDot(img, x, y, scale, c)
	}

	return img
}

// drawLine rasterizes a line segment with Bresenham's algorithm.
func drawLine(img *image.Paletted, x0, y0, x1, y1 int, c uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		setPixel(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawDot paints a small square centered at (cx, cy), sized to stay
// visible regardless of scale.
func drawDot(img *image.Paletted, cx, cy, scale int, c uint8) {
	r := scale / 3
	if r < 1 {
		r = 1
	}
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			setPixel(img, x, y, c)
		}
	}
}

func setPixel(img *image.Paletted, x, y int, c uint8) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	img.SetColorIndex(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
