// Package transform implements the per-pixel chromaticity policies:
// dichromat simulation, correction and contrast rotation.
//
// Each policy is a pure function of a chromaticity coordinate, a
// dichromacy parameter bundle and a sensitivity in [0, 1]. A policy
// returns ok == false when the geometry is degenerate for that point, in
// which case the input point is returned unchanged.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/juspurplan/ee371r-project/internal/chroma"
	"github.com/juspurplan/ee371r-project/internal/dichromacy"
)

var (
	ErrZeroSensitivity    = errors.New("sensitivity is 0, cannot correct color blindness")
	ErrInvalidSensitivity = errors.New("sensitivity must be a finite number")
	ErrInvalidMode        = errors.New("invalid transform mode")
)

// Mode selects a pixel policy.
type Mode int

const (
	Simulate Mode = iota
	Correct
	ContrastRotate
)

func (m Mode) String() string {
	switch m {
	case Simulate:
		return "simulate"
	case Correct:
		return "correct"
	case ContrastRotate:
		return "rotate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "simulate":
		return Simulate, nil
	case "correct":
		return Correct, nil
	case "rotate", "contrast-rotate":
		return ContrastRotate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Func maps one chromaticity coordinate to its transformed value.
// It is safe for concurrent use.
type Func func(chroma.Point) (chroma.Point, bool)

// CheckSensitivity rejects NaN and infinite sensitivities. Any finite
// value is accepted and later clamped.
func CheckSensitivity(s float64) error {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSensitivity, s)
	}
	return nil
}

// ClampSensitivity restricts a finite s to [0, 1].
func ClampSensitivity(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}

// New validates the mode, type and sensitivity once and returns the
// per-pixel function for them. A non-finite sensitivity is an error;
// otherwise it is clamped to [0, 1] and Correct and ContrastRotate reject
// a clamped sensitivity of 0.
func New(mode Mode, t dichromacy.Type, sensitivity float64) (Func, error) {
	params, err := dichromacy.Lookup(t)
	if err != nil {
		return nil, err
	}
	if err := CheckSensitivity(sensitivity); err != nil {
		return nil, err
	}
	s := ClampSensitivity(sensitivity)

	switch mode {
	case Simulate:
		return func(pt chroma.Point) (chroma.Point, bool) {
			return SimulatePoint(pt, &params, s)
		}, nil
	case Correct:
		if s == 0 {
			return nil, ErrZeroSensitivity
		}
		return func(pt chroma.Point) (chroma.Point, bool) {
			return CorrectPoint(pt, &params, s)
		}, nil
	case ContrastRotate:
		if s == 0 {
			return nil, ErrZeroSensitivity
		}
		return func(pt chroma.Point) (chroma.Point, bool) {
			return ContrastRotatePoint(pt, &params, s)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
}

// checked returns res when it is finite and falls back to pt otherwise.
func checked(pt, res chroma.Point) (chroma.Point, bool) {
	if !res.Finite() {
		return pt, false
	}
	return res, true
}
