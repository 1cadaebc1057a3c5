// Package flip implements the digit cells of the flip clock and the display
// engine that drives them from a time source.
package flip

import (
	"errors"
	"fmt"
)

// Variant selects how a digit transition is drawn. The cell state machine
// is the same for every variant.
type Variant string

const (
	VariantPlain Variant = "plain"
	VariantCard  Variant = "card"
	VariantCubeV Variant = "cube-v"
	VariantCubeH Variant = "cube-h"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown transition variant")

var variants = []Variant{VariantPlain, VariantCard, VariantCubeV, VariantCubeH}

// Variants lists every variant in cycling order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// ParseVariant maps a name to a Variant. The empty string is plain.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantPlain, nil
	}
	for _, v := range variants {
		if string(v) == s {
			return v, nil
		}
	}
	return VariantPlain, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Next returns the variant after v in cycling order.
func (v Variant) Next() Variant {
	for i, other := range variants {
		if other == v {
			return variants[(i+1)%len(variants)]
		}
	}
	return VariantPlain
}

// Animated reports whether the variant draws intermediate frames.
func (v Variant) Animated() bool {
	return v != VariantPlain
}
