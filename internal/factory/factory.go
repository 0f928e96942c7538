package factory

import (
	"log/slog"

	"github.com/quintans/faults"
	"github.com/quintans/stackfactory/internal/lib/ds"
	"github.com/quintans/stackfactory/internal/lib/safe"
	"github.com/quintans/stackfactory/internal/model"
)

// Make builds an empty stack of the given variant.
func Make[T any](variant model.Variant, capacity int) (ds.BoundedStack[T], error) {
	var (
		s   ds.BoundedStack[T]
		err error
	)
	switch variant {
	case model.Array:
		s, err = newArray[T](capacity)
	case model.Linked:
		s, err = newLinked[T](capacity)
	default:
		return nil, faults.Errorf("%w: %q", model.ErrUnknownVariant, variant)
	}
	if err != nil {
		return nil, faults.Wrap(err)
	}

	slog.Debug("Stack created", "variant", variant, "capacity", capacity)
	return s, nil
}

// avoid returning a typed nil inside the interface
func newArray[T any](capacity int) (ds.BoundedStack[T], error) {
	s, err := ds.NewArray[T](capacity)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newLinked[T any](capacity int) (ds.BoundedStack[T], error) {
	s, err := ds.NewLinked[T](capacity)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type Option func(*Factory)

func WithVariant(v model.Variant) Option {
	return func(f *Factory) {
		f.variant.Set(v)
	}
}

// Factory remembers which variant MakeStack builds.
type Factory struct {
	variant *safe.Safe[model.Variant]
}

func New(options ...Option) *Factory {
	f := &Factory{
		variant: safe.New(model.Array),
	}
	for _, o := range options {
		o(f)
	}
	return f
}

func (f *Factory) Variant() model.Variant {
	return f.variant.Get()
}

func (f *Factory) SetStackType(v model.Variant) {
	f.variant.Set(v)
}

// SetStackTag selects the variant by its integer tag. Unknown tags leave the
// current selection untouched.
func (f *Factory) SetStackTag(tag int) error {
	v, err := model.VariantFromTag(tag)
	if err != nil {
		return faults.Wrap(err)
	}
	f.variant.Set(v)
	return nil
}

// MakeStack builds a stack of the currently selected variant.
func MakeStack[T any](f *Factory, capacity int) (ds.BoundedStack[T], error) {
	return Make[T](f.Variant(), capacity)
}

var std = New()

// Default returns the process-wide factory.
func Default() *Factory {
	return std
}

func SetStackType(v model.Variant) {
	std.SetStackType(v)
}

func SetStackTag(tag int) error {
	return std.SetStackTag(tag)
}

func MakeStackDefault[T any](capacity int) (ds.BoundedStack[T], error) {
	return MakeStack[T](std, capacity)
}

// Reset restores the process-wide selection to model.Array.
func Reset() {
	std.SetStackType(model.Array)
}
