package transform

import (
	"math"

	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
)

const (
	// rotateStrength scales both the stretch and rotation magnitudes.
	rotateStrength = 0.3

	// neutralRadius is the distance from white within which colours are
	// passed through; the confusion-line geometry is unstable there.
	neutralRadius = 0.03

	// minProjectionDist treats a colour this close to its projection as
	// lying on the reference line, where no rotation direction exists.
	minProjectionDist = 1e-12
)

// ContrastRotatePoint pushes a blind-side colour away from its dichromatic
// projection: nearby colours are mostly stretched outwards along the
// projection-to-colour direction, distant ones mostly rotated about the
// projection. Colours off the blind side or within neutralRadius of white
// are returned unchanged. s must be greater than 0.
func ContrastRotatePoint(pt chroma.Point, p *dichromacy.Params, s float64) (chroma.Point, bool) {
	if !p.OnBlindSide(pt) || pt.Dist(chroma.White()) <= neutralRadius {
		return pt, true
	}
	if s <= 0 {
		return pt, false
	}
	proj, ok := p.Project(pt)
	if !ok {
		return pt, false
	}
	d := pt.Sub(proj)
	dist := d.Len()
	if dist < minProjectionDist {
		return pt, false
	}

	stretch := rotateStrength * (1 - s)
	rotate := rotateStrength * (1 - s)

	rotateWeight := (2 / math.Pi) * math.Atan(2*dist)
	stretchWeight := 1 - rotateWeight

	stretched := pt.Add(d.Scale(stretch * stretchWeight / dist))
	added := p.RotationSign * rotate / (2 * math.Pi * dist)
	angle := chroma.LineAngle(pt, proj) + added

	r := stretched.Dist(proj)
	res := chroma.Point{
		X: proj.X + r*math.Cos(angle),
		Y: proj.Y + r*math.Sin(angle),
	}
	return checked(pt, res)
}
