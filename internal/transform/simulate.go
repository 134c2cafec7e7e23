package transform

import (
	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
)

// SimulatePoint predicts how a dichromat perceives pt.
//
// On the blind side pt moves towards the point of its confusion line
// closest to white; elsewhere it blends towards its dichromatic
// projection. Sensitivity 0 applies the full loss, 1 returns pt exactly.
func SimulatePoint(pt chroma.Point, p *dichromacy.Params, s float64) (chroma.Point, bool) {
	var anchor chroma.Point
	var ok bool
	if p.OnBlindSide(pt) {
		anchor, ok = p.ClosestToWhite(pt)
	} else {
		anchor, ok = p.Project(pt)
	}
	if !ok {
		return pt, false
	}
	return checked(pt, pt.Add(anchor.Sub(pt).Scale(1-s)))
}
