package dichromacy

import (
	"fmt"
	"math"

	"github.com/juspurplan/ee371r-project/internal/chroma"
)

// Params is the constant parameter bundle for one dichromacy type.
type Params struct {
	// Copunctal is the point every confusion line of this deficiency passes through.
	Copunctal chroma.Point

	// BlindAngle is the empirically determined blind-colour angle (radians).
	// It is carried with the bundle but not consumed by the geometry.
	BlindAngle float64

	// AngleToWhite is the reference angle from Copunctal towards the white
	// point, used to decide which side of the confusion fan is blind.
	AngleToWhite float64

	// RefStart and RefEnd delimit the empirical line dichromats perceive
	// colours as collapsing onto. Slope and YIntercept are derived from them.
	RefStart   chroma.Point
	RefEnd     chroma.Point
	Slope      float64
	YIntercept float64

	// blindAbove flips the blind-side test: red/green fans are blind at or
	// below AngleToWhite, the blue fan at or above it.
	blindAbove bool

	// RotationSign is +1 for counter-clockwise contrast rotation and -1 for
	// clockwise.
	RotationSign float64
}

// Copunctal points come from empirical confusion-line studies
// (Vision Research, 1996). Reference lines are the linearised SimDalton
// perception lines.
var table = [numTypes]Params{
	Protanopia: newParams(
		chroma.Point{X: 0.749, Y: 0.251},
		math.Pi*(3/4.0),
		math.Pi*0.9653993227530295,
		chroma.Point{X: 0.115807, Y: 0.073581},
		chroma.Point{X: 0.471899, Y: 0.527051},
		false),
	Deuteranopia: newParams(
		chroma.Point{X: 1.535, Y: -0.535},
		math.Pi*(5/8.0),
		math.Pi*0.8107602719455914,
		chroma.Point{X: 0.102776, Y: 0.102864},
		chroma.Point{X: 0.505845, Y: 0.493211},
		false),
	Tritanopia: newParams(
		chroma.Point{X: 0.174, Y: 0},
		math.Pi*(7/8.0),
		math.Pi*0.3734310792751017,
		chroma.Point{X: 0.045391, Y: 0.294976},
		chroma.Point{X: 0.665764, Y: 0.334011},
		true),
}

func newParams(copunctal chroma.Point, blindAngle, angleToWhite float64, start, end chroma.Point, blue bool) Params {
	d := end.Sub(start)
	slope := d.Y / d.X
	p := Params{
		Copunctal:    copunctal,
		BlindAngle:   blindAngle,
		AngleToWhite: angleToWhite,
		RefStart:     start,
		RefEnd:       end,
		Slope:        slope,
		YIntercept:   start.Y - slope*start.X,
		blindAbove:   blue,
		RotationSign: 1,
	}
	if blue {
		p.RotationSign = -1
	}
	return p
}

// Lookup returns a copy of the parameter bundle for t.
func Lookup(t Type) (Params, error) {
	if !t.Valid() {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidType, t)
	}
	return table[t], nil
}

// MustLookup is like Lookup but panics on an invalid type. It is intended
// for package-level initialisation and tests.
func MustLookup(t Type) Params {
	p, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return p
}
