package dichromacy

import "github.com/juspurplan/ee371r-project/internal/chroma"

// OnBlindSide reports whether pt lies on the blind half of the confusion
// fan, comparing the angle of its confusion line against AngleToWhite.
func (p *Params) OnBlindSide(pt chroma.Point) bool {
	return p.blindAt(chroma.LineAngle(pt, p.Copunctal))
}

// blindAt classifies a confusion-line angle. Both boundaries are inclusive.
func (p *Params) blindAt(angle float64) bool {
	diff := angle - p.AngleToWhite
	if p.blindAbove {
		return diff >= 0
	}
	return diff <= 0
}

// Project returns where the confusion line through pt meets the reference
// line: the colour a dichromat is predicted to perceive for pt.
//
// ok is false when the confusion line is vertical (pt shares the copunctal
// x coordinate) or parallel to the reference line.
func (p *Params) Project(pt chroma.Point) (proj chroma.Point, ok bool) {
	d := pt.Sub(p.Copunctal)
	if d.X == 0 {
		return pt, false
	}
	slope := d.Y / d.X
	if slope == p.Slope {
		return pt, false
	}
	yint := pt.Y - slope*pt.X

	x := (p.YIntercept - yint) / (slope - p.Slope)
	proj = chroma.Point{X: x, Y: slope*x + yint}
	if !proj.Finite() {
		return pt, false
	}
	return proj, true
}

// ClosestToWhite returns the point on the confusion line through pt that
// is nearest the white point. ok is false when pt coincides with the
// copunctal point.
func (p *Params) ClosestToWhite(pt chroma.Point) (chroma.Point, bool) {
	d := pt.Sub(p.Copunctal)
	n2 := d.Dot(d)
	if n2 == 0 {
		return pt, false
	}
	t := chroma.White().Sub(p.Copunctal).Dot(d) / n2
	c := p.Copunctal.Add(d.Scale(t))
	if !c.Finite() {
		return pt, false
	}
	return c, true
}
