package model_test

import (
	"testing"

	"github.com/quintans/stackfactory/internal/lib/ds"
	"github.com/quintans/stackfactory/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want model.Variant
	}{
		{"array", model.Array},
		{"Linked", model.Linked},
		{" ARRAY ", model.Array},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := model.ParseVariant(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	v, err := model.ParseVariant("heap")
	assert.ErrorIs(t, err, model.ErrUnknownVariant)
	assert.ErrorIs(t, err, ds.ErrInvalidArgument)
	assert.True(t, v.IsZero())
}

func TestVariantFromTag(t *testing.T) {
	v, err := model.VariantFromTag(1)
	require.NoError(t, err)
	assert.Equal(t, model.Array, v)
	assert.Equal(t, "array", v.String())

	v, err = model.VariantFromTag(2)
	require.NoError(t, err)
	assert.Equal(t, model.Linked, v)
	assert.Equal(t, 2, v.Tag())

	for _, tag := range []int{0, -1, 3} {
		_, err = model.VariantFromTag(tag)
		assert.ErrorIs(t, err, model.ErrUnknownVariant, "tag %d", tag)
	}
}
