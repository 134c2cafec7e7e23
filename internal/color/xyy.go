package color

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/ir"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// xyzFloor replaces non-positive XYZ components so that pure black still
// has a defined chromaticity.
const xyzFloor = 0.001

// ToXYY converts an sRGB pixel to CIE xy chromaticity and luminance Y.
// Alpha is ignored.
func ToXYY(c stdcolor.NRGBA) (chroma.Point, float64) {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	X, Y, Z := col.Xyz()
	X, Y, Z = floor(X), floor(Y), floor(Z)
	x, y, lum := colorful.XyzToXyy(X, Y, Z)
	return chroma.Point{X: x, Y: y}, lum
}

// FromXYY converts chromaticity and luminance back to an opaque sRGB pixel,
// clamping out-of-gamut results.
func FromXYY(p chroma.Point, lum float64) stdcolor.NRGBA {
	X, Y, Z := colorful.XyyToXyz(p.X, p.Y, lum)
	r, g, b := colorful.Xyz(X, Y, Z).Clamped().RGB255()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func floor(v float64) float64 {
	if v <= 0 {
		return xyzFloor
	}
	return v
}

// Decompose converts any decoded image to split xyY planes. The image is
// first normalised to non-premultiplied RGBA and its alpha dropped.
func Decompose(img image.Image) *ir.XYYImage {
	b := img.Bounds()
	src, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	out := ir.NewXYYImage(w, h)
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				p, lum := ToXYY(src.NRGBAAt(x, y))
				out.SetChroma(i, p)
				out.Lum[i] = lum
			}
		}
	})
	return out
}

// Compose rebuilds an opaque sRGB image from xyY planes.
func Compose(im *ir.XYYImage) (*image.NRGBA, error) {
	n := im.Width * im.Height
	if len(im.X) != n || len(im.Y) != n || len(im.Lum) != n {
		return nil, fmt.Errorf("expected %d values per plane, got x=%d y=%d lum=%d",
			n, len(im.X), len(im.Y), len(im.Lum))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	parallel.Line(im.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < im.Width; x++ {
				i := y*im.Width + x
				dst.SetNRGBA(x, y, FromXYY(im.Chroma(i), im.Lum[i]))
			}
		}
	})
	return dst, nil
}

// ParseHex parses a "#rrggbb" (or "#rgb") sRGB colour.
func ParseHex(s string) (stdcolor.NRGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return stdcolor.NRGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c stdcolor.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
