package model

import (
	"fmt"
	"strings"

	"github.com/quintans/faults"
	"github.com/quintans/stackfactory/internal/lib/ds"
)

// ErrUnknownVariant also matches ds.ErrInvalidArgument.
var ErrUnknownVariant = fmt.Errorf("unknown stack variant: %w", ds.ErrInvalidArgument)

type Variant struct {
	name string
	tag  int
}

func (v Variant) String() string {
	return v.name
}

// Tag is the integer identifier accepted by legacy configuration.
func (v Variant) Tag() int {
	return v.tag
}

func (v Variant) IsZero() bool {
	return v == Variant{}
}

var (
	Array  = Variant{"array", 1}
	Linked = Variant{"linked", 2}
)

var Variants = []Variant{
	Array,
	Linked,
}

func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.name, strings.TrimSpace(s)) {
			return v, nil
		}
	}

	return Variant{}, faults.Errorf("%w: %q", ErrUnknownVariant, s)
}

func VariantFromTag(tag int) (Variant, error) {
	for _, v := range Variants {
		if v.tag == tag {
			return v, nil
		}
	}

	return Variant{}, faults.Errorf("%w: tag %d", ErrUnknownVariant, tag)
}
