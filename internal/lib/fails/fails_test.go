package fails_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/quintans/faults"
	"github.com/quintans/stackfactory/internal/lib/fails"
	"github.com/quintans/stackfactory/internal/lib/values"
	"github.com/stretchr/testify/assert"
)

var errState = errors.New("invalid state")

func TestWrapChain(t *testing.T) {
	inner := fails.Wrap(errState, "stack is full", "size", 2)
	err := faults.Errorf("pushing: %w", inner)
	outer := fails.Wrap(err, "draining", "capacity", 2)

	assert.Equal(t, "draining (capacity=2): pushing: stack is full (size=2): invalid state", fmt.Sprintf("%v", outer))
	assert.Equal(t, values.M{"size": 2, "capacity": 2}, outer.Values())
	assert.ErrorIs(t, outer, errState)
}

func TestOuterValuesWin(t *testing.T) {
	inner := fails.Wrap(errState, "inner", "size", 1)
	outer := fails.Wrap(inner, "outer", "size", 2)

	assert.Equal(t, values.M{"size": 2}, outer.Values())
}

func TestWith(t *testing.T) {
	err := fails.Wrap(nil, "negative capacity").With("capacity", -1)
	assert.Equal(t, "negative capacity (capacity=-1)", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestValuesOf(t *testing.T) {
	assert.Empty(t, fails.ValuesOf(errState))
	assert.Empty(t, fails.ValuesOf(nil))

	err := faults.Wrap(fails.Wrap(errState, "stack is full").With("capacity", 3))
	assert.Equal(t, values.M{"capacity": 3}, fails.ValuesOf(err))
}
