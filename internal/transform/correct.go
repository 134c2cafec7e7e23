package transform

import (
	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
)

// CorrectPoint inverts the linear loss model
//
//	perceived = (1-s)*projection + s*true
//
// solving for true, so that a dichromat viewing the result perceives
// something closer to pt. It applies to every point regardless of side.
// s must be greater than 0.
func CorrectPoint(pt chroma.Point, p *dichromacy.Params, s float64) (chroma.Point, bool) {
	if s <= 0 {
		return pt, false
	}
	proj, ok := p.Project(pt)
	if !ok {
		return pt, false
	}
	return checked(pt, pt.Sub(proj.Scale(1-s)).Scale(1/s))
}
