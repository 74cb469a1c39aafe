package svy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/svy"
)

func TestScoreConstructMeans(t *testing.T) {
	obs := []str.Observation{
		{AnxNervous: gen.Ptr(1.0), AnxWorry: gen.Ptr(2.0)},                       // third item unanswered
		{DepDown: gen.Ptr(3.0), DepInterest: gen.Ptr(3.0), DepHopeless: gen.Ptr(3.0)},
	}

	out := svy.Score(obs)

	require.NotNil(t, out[0].Anxiety)
	assert.InDelta(t, 1.5, *out[0].Anxiety, 1e-12)
	assert.Nil(t, out[0].Depression)

	require.NotNil(t, out[1].Depression)
	assert.InDelta(t, 3.0, *out[1].Depression, 1e-12)
	assert.Nil(t, out[1].Anxiety)
}

func TestScoreZColumnsAreStandard(t *testing.T) {
	// five caregivers with spread-out anxiety and fussiness
	var obs []str.Observation
	for i := 1; i <= 5; i++ {
		obs = append(obs, str.Observation{
			AnxNervous: gen.Ptr(float64(i)),
			AnxWorry:   gen.Ptr(float64(i)),
			FussFussy:  gen.Ptr(float64(6 - i)),
		})
	}

	out := svy.Score(obs)

	var za, zf []float64
	for i := range out {
		require.NotNil(t, out[i].ZAnxiety)
		require.NotNil(t, out[i].ZFussiness)
		za = append(za, *out[i].ZAnxiety)
		zf = append(zf, *out[i].ZFussiness)
	}

	assert.InDelta(t, 0.0, stat.Mean(za, nil), 1e-9)
	assert.InDelta(t, 1.0, stat.StdDev(za, nil), 1e-9)
	assert.InDelta(t, 0.0, stat.Mean(zf, nil), 1e-9)
	assert.InDelta(t, 1.0, stat.StdDev(zf, nil), 1e-9)
}

func TestScoreComposites(t *testing.T) {
	// anxiety means 1,2,3 with no other parent constructs anywhere;
	// fussiness 1..4 so the child side is defined for everyone
	obs := []str.Observation{
		{AnxNervous: gen.Ptr(1.0), FussFussy: gen.Ptr(1.0)},
		{AnxNervous: gen.Ptr(2.0), FussFussy: gen.Ptr(2.0)},
		{AnxNervous: gen.Ptr(3.0), FussFussy: gen.Ptr(3.0)},
		{FussFussy: gen.Ptr(4.0)}, // no parent items at all
	}

	out := svy.Score(obs)

	// z over {1,2,3}: exactly -1, 0, +1
	require.NotNil(t, out[2].ZAnxiety)
	assert.InDelta(t, 1.0, *out[2].ZAnxiety, 1e-9)

	// the worst-off caregiver gets the lowest well-being
	require.NotNil(t, out[2].ParentWB)
	assert.InDelta(t, -1.0, *out[2].ParentWB, 1e-9)
	require.NotNil(t, out[0].ParentWB)
	assert.InDelta(t, 1.0, *out[0].ParentWB, 1e-9)

	// composite missing iff every group item is missing
	assert.Nil(t, out[3].ParentWB)
	require.NotNil(t, out[3].ChildWB)

	// never coerced to zero
	for i := range out {
		if out[i].ParentWB != nil {
			continue
		}
		assert.Nil(t, out[i].Anxiety)
		assert.Nil(t, out[i].Depression)
		assert.Nil(t, out[i].Stress)
		assert.Nil(t, out[i].Loneliness)
	}
}

func TestScoreLeavesInputAlone(t *testing.T) {
	obs := []str.Observation{
		{AnxNervous: gen.Ptr(2.0)},
		{AnxNervous: gen.Ptr(4.0)},
	}

	_ = svy.Score(obs)

	assert.Nil(t, obs[0].Anxiety)
	assert.Nil(t, obs[0].ZAnxiety)
	assert.Nil(t, obs[0].ParentWB)
}
