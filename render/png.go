package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	voronoi "github.com/hanting/fortune-voronoi"
)

// EncodePNG rasterizes d at the given scale and writes it to w as PNG.
func EncodePNG(w io.Writer, d *voronoi.Diagram, scale int) error {
	img := Rasterize(d, scale)
	return png.Encode(w, img)
}

// resample scales src to exactly (w, h) using Catmull-Rom interpolation,
// the smoothest of golang.org/x/image/draw's scalers — used by EncodeGIF
// to bring a frame whose pixel size differs from the first frame's to
// that size.
func resample(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
