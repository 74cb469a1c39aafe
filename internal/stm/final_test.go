package stm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/e-gun/sparse"
)

func TestNsbasisShape(t *testing.T) {
	x := make([]float64, 12)
	for i := range x {
		x[i] = float64(i)
	}

	cols := nsbasis(x, 5)

	require.Len(t, cols, 5)
	assert.Equal(t, x, cols[0])
	for _, c := range cols {
		assert.Len(t, c, len(x))
	}
}

func TestNsbasisDegenerate(t *testing.T) {
	x := []float64{3, 3, 3, 3}

	cols := nsbasis(x, 5)

	require.Len(t, cols, 1)
	assert.Equal(t, x, cols[0])
}

func TestDropflat(t *testing.T) {
	names := []string{"intercept", "flat", "varies"}
	design := [][]float64{
		{1, 2, 5},
		{1, 2, 7},
		{1, 2, 9},
	}

	kn, kd := dropflat(names, design)

	assert.Equal(t, []string{"intercept", "varies"}, kn)
	require.Len(t, kd, 3)
	assert.Equal(t, []float64{1, 5}, kd[0])
	assert.Equal(t, []float64{1, 9}, kd[2])
}

func TestLoglik(t *testing.T) {
	dok := sparse.NewDOK(2, 1)
	dok.Set(0, 0, 1)
	dok.Set(1, 0, 3)

	theta := mat.NewDense(1, 1, []float64{1.0})
	phi := mat.NewDense(1, 2, []float64{0.25, 0.75})

	want := math.Log(0.25) + 3*math.Log(0.75)
	assert.InDelta(t, want, loglik(dok.ToCSR(), theta, phi), 1e-12)
}

func TestBoundAndLBound(t *testing.T) {
	m := &Model{K: 4, BoundTrace: []float64{-20, -10}}

	assert.InDelta(t, -10.0, m.Bound(), 1e-12)
	assert.InDelta(t, -10.0+math.Log(24), m.LBound(), 1e-9)
}
