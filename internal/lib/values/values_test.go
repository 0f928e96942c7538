package values_test

import (
	"testing"

	"github.com/quintans/stackfactory/internal/lib/values"
	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var (
		p  *int
		m  map[string]int
		s  []int
		ch chan int
		f  func()
		e  error
	)
	for name, v := range map[string]any{"nil": nil, "pointer": p, "map": m, "slice": s, "chan": ch, "func": f, "error": e} {
		assert.True(t, values.IsNil(v), name)
	}

	for name, v := range map[string]any{"zero int": 0, "empty string": "", "false": false, "struct": struct{}{}, "pointer": new(int), "empty slice": []int{}} {
		assert.False(t, values.IsNil(v), name)
	}
}

func TestToStr(t *testing.T) {
	m := values.ToMap([]any{"size", 2, "capacity", 3, "variant", "array"})
	assert.Equal(t, "(capacity=3; size=2; variant=array)", values.ToStr(m))
	assert.Equal(t, "", values.ToStr(values.M{}))
}
