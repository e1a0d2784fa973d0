package render

import (
	"fmt"
	"image"
	"image/gif"
	"io"

	voronoi "github.com/hanting/fortune-voronoi"
)

// EncodeGIF rasterizes each of frames at scale and writes them as an
// animated GIF to w, delay centiseconds apart. Every frame is resampled
// to the first frame's pixel size (via golang.org/x/image/draw's
// Catmull-Rom scaler) before being quantized onto this package's fixed
// palette, so a caller mixing diagrams built over different bounds (the
// canvas size is derived from each diagram's Bounds and scale) still gets
// a well-formed GIF.
func EncodeGIF(w io.Writer, frames []*voronoi.Diagram, scale, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("render: EncodeGIF requires at least one frame")
	}

	first := Rasterize(frames[0], scale)
	size := first.Bounds()

	anim := gif.GIF{}
	for i, d := range frames {
		var frame *image.Paletted
		if i == 0 {
			frame = first
		} else {
			raw := Rasterize(d, scale)
			if raw.Bounds() == size {
				frame = raw
			} else {
				frame = quantize(resample(raw, size.Dx(), size.Dy()))
			}
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	return gif.EncodeAll(w, &anim)
}

// quantize maps an RGBA image onto this package's fixed palette by
// nearest-color lookup.
func quantize(src *image.RGBA) *image.Paletted {
	b := src.Bounds()
	out := image.NewPaletted(b, palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetColorIndex(x, y, uint8(palette.Index(src.At(x, y))))
		}
	}
	return out
}
