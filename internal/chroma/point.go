package chroma

import "math"

// Point is a CIE 1931 xy chromaticity coordinate.
type Point struct {
	X float64
	Y float64
}

var white = Point{1.0 / 3.0, 1.0 / 3.0}

// White returns the equal-energy white point used by all confusion-line
// geometry.
func White() Point { return white }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p taken as a displacement vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// Finite reports whether both coordinates are neither NaN nor infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// LineAngle returns the angle in [0, 2π) of the displacement p - pivot.
//
// A vertical displacement yields π/2 when it points up and 3π/2 otherwise
// (including a zero displacement). Every other case uses atan(dy/dx),
// shifted by π for the left half-plane.
func LineAngle(p, pivot Point) float64 {
	d := p.Sub(pivot)
	var a float64
	if d.X == 0 {
		if d.Y > 0 {
			a = math.Pi / 2
		} else {
			a = 3 * math.Pi / 2
		}
	} else {
		a = math.Atan(d.Y / d.X)
		if d.X < 0 {
			a += math.Pi
		}
	}
	return math.Mod(a+2*math.Pi, 2*math.Pi)
}
