package stm_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-gun/SurveyTopicsGo/internal/dtm"
	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/stm"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
)

// 24 documents riding two obvious themes
func sweepcorpus(t *testing.T) (*str.DocTermMatrix, []str.Observation) {
	t.Helper()

	sleepy := []string{"sleep", "nap", "night", "tired"}
	worky := []string{"work", "job", "shift", "pay"}

	var rows []str.TokenRow
	var obs []str.Observation
	for i := 0; i < 24; i++ {
		id := fmt.Sprintf("cg%d_1", i)
		theme := sleepy
		if i%2 == 1 {
			theme = worky
		}
		for j, tm := range theme {
			for n := 0; n <= (i+j)%3; n++ {
				rows = append(rows, str.TokenRow{ObsID: id, Term: tm})
			}
		}

		race := []string{"Black", "White", "Other"}[i%3]
		obs = append(obs, str.Observation{
			ObsID:    id,
			Race:     race,
			Month:    i / 2,
			Poverty:  gen.Ptr(float64(i % 2)),
			ParentWB: gen.Ptr(float64((i*7)%13)/3.0 - 2.0),
			ChildWB:  gen.Ptr(float64((i*5)%11)/2.0 - 2.5),
		})
	}

	m, kept, err := dtm.Build(rows, obs)
	require.NoError(t, err)
	require.Len(t, kept, 24)
	return m, kept
}

func sweepcfg(grid ...int) stm.LDAConfig {
	return stm.LDAConfig{
		LDAIterations:  30,
		LDAXformPasses: 20,
		BurnInPasses:   1,
		ChangeEvalFrq:  5,
		PerplexEvalFrq: 5,
		PerplexTol:     1e-2,
		KGrid:          grid,
		ChosenK:        2,
		Seed:           1729,
	}
}

func TestRunSweepRecords(t *testing.T) {
	m, _ := sweepcorpus(t)
	h := dtm.Split(m, 11)

	records := stm.RunSweep(h, sweepcfg(2, 3), 2)

	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].K)
	assert.Equal(t, 3, records[1].K)

	for _, r := range records {
		assert.Empty(t, r.Failure)
		assert.Len(t, r.Exclusivity, r.K)
		assert.Len(t, r.Coherence, r.K)
		assert.GreaterOrEqual(t, r.Iterations, 1)
		assert.False(t, math.IsNaN(r.Bound))
		lg, _ := math.Lgamma(float64(r.K) + 1)
		assert.InDelta(t, r.Bound+lg, r.LBound, 1e-9)
		assert.Less(t, r.Heldout, 0.0)
	}
}

func TestRunSweepIndependentOfSiblings(t *testing.T) {
	m, _ := sweepcorpus(t)
	h := dtm.Split(m, 11)

	paired := stm.RunSweep(h, sweepcfg(2, 3), 2)
	solo := stm.RunSweep(h, sweepcfg(2), 1)

	require.Len(t, solo, 1)
	a, b := paired[0], solo[0]

	assert.Equal(t, a.K, b.K)
	assert.Equal(t, a.Iterations, b.Iterations)
	assert.InDelta(t, a.Bound, b.Bound, 1e-12)
	assert.InDelta(t, a.LBound, b.LBound, 1e-12)
	assert.InDelta(t, a.Heldout, b.Heldout, 1e-12)
	assert.InDelta(t, a.Dispersion, b.Dispersion, 1e-12)
	assert.InDelta(t, a.DispersionP, b.DispersionP, 1e-12)
	assert.InDeltaSlice(t, a.Exclusivity, b.Exclusivity, 1e-12)
	assert.InDeltaSlice(t, a.Coherence, b.Coherence, 1e-12)
}

func TestFitFinal(t *testing.T) {
	m, obs := sweepcorpus(t)

	tm, err := stm.FitFinal(m, obs, sweepcfg(2), 1, "abc123")
	require.NoError(t, err)

	assert.Equal(t, 2, tm.K)
	assert.Equal(t, uint64(1729), tm.Seed)
	assert.Equal(t, m.RowIDs, tm.DocIDs)
	assert.Equal(t, m.Terms, tm.Terms)
	assert.Equal(t, "abc123", tm.Fingerprint)
	assert.NotEmpty(t, tm.BoundTrace)

	require.Len(t, tm.TopicsOverWords, 2)
	for _, row := range tm.TopicsOverWords {
		require.Len(t, row, len(m.Terms))
		total := 0.0
		for _, p := range row {
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-6)
	}

	require.Len(t, tm.DocsOverTopics, len(m.RowIDs))
	for _, row := range tm.DocsOverTopics {
		total := 0.0
		for _, p := range row {
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-6)
	}

	// every document carries complete covariates
	assert.Equal(t, 24, tm.Prevalence.Used)
	assert.Equal(t, 0, tm.Prevalence.Dropped)
	assert.Contains(t, tm.Prevalence.Names, "race_white")
	assert.Contains(t, tm.Prevalence.Names, "month_ns1")
	require.Len(t, tm.Prevalence.Coef, 2)
	for _, cc := range tm.Prevalence.Coef {
		assert.Len(t, cc, len(tm.Prevalence.Names))
	}
}
