package dichromacy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidType is returned for any dichromacy name or value outside the
// three modelled deficiencies.
var ErrInvalidType = errors.New("invalid dichromacy type")

// Type selects one of the three dichromatic deficiencies.
type Type int

const (
	Protanopia Type = iota
	Deuteranopia
	Tritanopia

	numTypes
)

var typeNames = [numTypes]string{
	Protanopia:   "protanopia",
	Deuteranopia: "deuteranopia",
	Tritanopia:   "tritanopia",
}

// Types lists every valid Type in declaration order.
func Types() []Type {
	return []Type{Protanopia, Deuteranopia, Tritanopia}
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType converts a deficiency name (case-insensitive) to a Type.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want protanopia, deuteranopia or tritanopia)", ErrInvalidType, s)
}
