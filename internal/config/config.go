package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/quintans/faults"
	"github.com/quintans/stackfactory/internal/factory"
	"github.com/quintans/stackfactory/internal/lib/ds"
	"github.com/quintans/stackfactory/internal/lib/fails"
	"github.com/quintans/stackfactory/internal/model"
	"github.com/tidwall/gjson"
)

const (
	variantPath  = "stack.variant"
	tagPath      = "stack.tag"
	capacityPath = "stack.capacity"
)

type Config struct {
	Variant  model.Variant
	Capacity int
}

func Default() Config {
	return Config{
		Variant:  model.Array,
		Capacity: 16,
	}
}

// Parse reads a document like {"stack": {"variant": "linked", "capacity": 8}}.
// The variant may also be given by its integer tag under "stack.tag".
// Missing keys keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if !gjson.ValidBytes(data) {
		return Config{}, faults.Wrap(fails.Wrap(ds.ErrInvalidArgument, "malformed config"))
	}

	res := gjson.GetManyBytes(data, variantPath, tagPath, capacityPath)
	name, tag, capacity := res[0], res[1], res[2]

	switch {
	case name.Exists():
		v, err := model.ParseVariant(name.String())
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", variantPath, err)
		}
		cfg.Variant = v
	case tag.Exists():
		t, err := integer(tagPath, tag)
		if err != nil {
			return Config{}, err
		}
		v, err := model.VariantFromTag(t)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", tagPath, err)
		}
		cfg.Variant = v
	}

	if capacity.Exists() {
		c, err := integer(capacityPath, capacity)
		if err != nil {
			return Config{}, err
		}
		if c < 0 {
			return Config{}, faults.Wrap(fails.Wrap(ds.ErrInvalidArgument, "negative capacity", "capacity", c))
		}
		cfg.Capacity = c
	}

	return cfg, nil
}

func integer(path string, r gjson.Result) (int, error) {
	if r.Type != gjson.Number || r.Num != float64(r.Int()) {
		return 0, faults.Wrap(fails.Wrap(ds.ErrInvalidArgument, "not an integer", "path", path, "value", r.Raw))
	}
	return int(r.Int()), nil
}

// Load parses the file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config '%s': %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("loading config '%s': %w", path, err)
	}
	return cfg, nil
}

func (c Config) Apply(f *factory.Factory) {
	f.SetStackType(c.Variant)
}
