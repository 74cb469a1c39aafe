package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
)

func TestToSet(t *testing.T) {
	s := gen.ToSet([]string{"a", "b", "a"})
	require.Len(t, s, 2)
	_, ok := s["a"]
	assert.True(t, ok)
	_, ok = s["c"]
	assert.False(t, ok)
}

func TestUnique(t *testing.T) {
	// non-consecutive repeats have to collapse too
	u := gen.Unique([]int{1, 2, 1, 3, 2, 1})
	assert.ElementsMatch(t, []int{1, 2, 3}, u)
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	assert.Equal(t, []string{"c", "d", "h"}, gen.SetSubtraction(aa, bb))
}

func TestContainsN(t *testing.T) {
	type tc struct {
		sl   []string
		seek string
		n    int
	}
	tests := []tc{
		{[]string{"id", "lang", "id"}, "id", 2},
		{[]string{"id", "lang"}, "lang", 1},
		{[]string{"id", "lang"}, "endtime", 0},
		{nil, "id", 0},
	}
	for _, x := range tests {
		assert.Equal(t, x.n, gen.ContainsN(x.sl, x.seek))
	}
}

func TestFlattenSlices(t *testing.T) {
	rows := [][]float64{{1, 0}, {0, 1}, {2, 2}}
	assert.Equal(t, []float64{1, 0, 0, 1, 2, 2}, gen.FlattenSlices(rows))
	assert.Nil(t, gen.FlattenSlices([][]int{}))
	assert.Equal(t, []int{7}, gen.FlattenSlices([][]int{nil, {7}, {}}))
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	keys := gen.StringMapKeysIntoSlice(map[string]int{"a": 1, "b": 2})
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestPtr(t *testing.T) {
	p := gen.Ptr(2.5)
	require.NotNil(t, p)
	assert.Equal(t, 2.5, *p)
}
