package ir

import "github.com/juspurplan/ee371r-project/internal/chroma"

// XYYImage is the intermediate representation passed between colour
// decomposition, the chromaticity transform and re-composition. Each plane
// holds one value per pixel in row-major order. Lum carries CIE Y and is
// never written by a transform.
type XYYImage struct {
	Width  int
	Height int
	X      []float64 // len = Width * Height
	Y      []float64 // len = Width * Height
	Lum    []float64 // len = Width * Height
}

// NewXYYImage allocates zeroed planes for a width x height image.
func NewXYYImage(width, height int) *XYYImage {
	n := width * height
	return &XYYImage{
		Width:  width,
		Height: height,
		X:      make([]float64, n),
		Y:      make([]float64, n),
		Lum:    make([]float64, n),
	}
}

// Chroma returns the chromaticity of pixel i.
func (im *XYYImage) Chroma(i int) chroma.Point {
	return chroma.Point{X: im.X[i], Y: im.Y[i]}
}

// SetChroma replaces the chromaticity of pixel i.
func (im *XYYImage) SetChroma(i int, p chroma.Point) {
	im.X[i] = p.X
	im.Y[i] = p.Y
}
