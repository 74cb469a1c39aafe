//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stm

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// FitFinal - one reproducible model at the chosen K on the full matrix, plus
// per-topic prevalence regressions over the document covariates
func FitFinal(dm *str.DocTermMatrix, obs []str.Observation, cfg LDAConfig, workers int, fingerprint string) (*str.TopicModel, error) {
	const (
		ERR1 = "FitFinal() could not fit the chosen model: %v"
		MSG1 = "FitFinal() fit K=%d [seed %d] in %d checkpoints"
	)

	m, err := Fit(dm, cfg.ChosenK, cfg.Seed, cfg, workers)
	if err != nil {
		return nil, fmt.Errorf(ERR1, err)
	}

	Msg.PEEK(fmt.Sprintf(MSG1, m.K, m.Seed, m.Iterations))

	k, v := m.Phi.Dims()
	_, d := m.Theta.Dims()

	tow := make([][]float64, k)
	for t := 0; t < k; t++ {
		tow[t] = make([]float64, v)
		for w := 0; w < v; w++ {
			tow[t][w] = m.Phi.At(t, w)
		}
	}

	dot := make([][]float64, d)
	for i := 0; i < d; i++ {
		dot[i] = make([]float64, k)
		for t := 0; t < k; t++ {
			dot[i][t] = m.Theta.At(t, i)
		}
	}

	prev := fitprevalence(m, dm, obs)

	return &str.TopicModel{
		K:               m.K,
		Seed:            m.Seed,
		Terms:           append([]string(nil), dm.Terms...),
		DocIDs:          append([]string(nil), dm.RowIDs...),
		TopicsOverWords: tow,
		DocsOverTopics:  dot,
		BoundTrace:      m.BoundTrace,
		Iterations:      m.Iterations,
		Prevalence:      prev,
		Fingerprint:     fingerprint,
	}, nil
}

// fitprevalence - regress the logit of each topic's share on race dummies
// (Black is the reference), the two composites, poverty, and a natural cubic
// spline over the month offset; complete cases only
func fitprevalence(m *Model, dm *str.DocTermMatrix, obs []str.Observation) str.PrevalenceFit {
	const (
		WRN1 = "fitprevalence() dropped the regression: %v"
		MSG1 = "fitprevalence() used %d documents and dropped %d"
		EPS  = 1e-6
	)

	byid := make(map[string]*str.Observation, len(obs))
	for i := range obs {
		byid[obs[i].ObsID] = &obs[i]
	}

	// [a] complete cases, in matrix row order

	var rows []int
	var months []float64
	for i, id := range dm.RowIDs {
		o, ok := byid[id]
		if !ok || o.Race == "" || o.Poverty == nil || o.ParentWB == nil || o.ChildWB == nil {
			continue
		}
		rows = append(rows, i)
		months = append(months, float64(o.Month))
	}

	fit := str.PrevalenceFit{
		Used:    len(rows),
		Dropped: len(dm.RowIDs) - len(rows),
	}

	Msg.PEEK(fmt.Sprintf(MSG1, fit.Used, fit.Dropped))

	if len(rows) == 0 {
		Msg.WARN(fmt.Sprintf(WRN1, "no complete cases"))
		return fit
	}

	// [b] assemble the design

	spline := nsbasis(months, vv.SPLINEDF)

	names := []string{"intercept", "race_white", "race_other", "parent_wb", "child_wb", "poverty"}
	for j := range spline {
		names = append(names, fmt.Sprintf("month_ns%d", j+1))
	}

	n := len(rows)
	p := len(names)
	design := make([][]float64, n)
	for r, i := range rows {
		o := byid[dm.RowIDs[i]]
		row := make([]float64, 0, p)
		row = append(row, 1.0)
		row = append(row, b2f(o.Race == "White"), b2f(o.Race == "Other"))
		row = append(row, *o.ParentWB, *o.ChildWB, *o.Poverty)
		for j := range spline {
			row = append(row, spline[j][r])
		}
		design[r] = row
	}

	names, design = dropflat(names, design)
	p = len(names)

	// mat.NewDense wants the rows laid end to end
	x := mat.NewDense(n, p, gen.FlattenSlices(design))

	// [c] logit outcomes, all topics at once

	k, _ := m.Theta.Dims()
	y := mat.NewDense(n, k, nil)
	for r, i := range rows {
		for t := 0; t < k; t++ {
			th := m.Theta.At(t, i)
			if th < EPS {
				th = EPS
			}
			if th > 1-EPS {
				th = 1 - EPS
			}
			y.Set(r, t, math.Log(th/(1-th)))
		}
	}

	// [d] least squares

	var beta mat.Dense
	if err := beta.Solve(x, y); err != nil {
		Msg.WARN(fmt.Sprintf(WRN1, err))
		return fit
	}

	fit.Names = names
	fit.Coef = make([][]float64, k)
	for t := 0; t < k; t++ {
		fit.Coef[t] = make([]float64, p)
		for j := 0; j < p; j++ {
			fit.Coef[t][j] = beta.At(j, t)
		}
	}

	return fit
}

func b2f(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

// dropflat - discard design columns with no variation; the intercept stays
func dropflat(names []string, design [][]float64) ([]string, [][]float64) {
	if len(design) == 0 {
		return names, design
	}
	p := len(names)
	keep := make([]bool, p)
	keep[0] = true
	for j := 1; j < p; j++ {
		for r := 1; r < len(design); r++ {
			if design[r][j] != design[0][j] {
				keep[j] = true
				break
			}
		}
	}

	var kn []string
	for j := 0; j < p; j++ {
		if keep[j] {
			kn = append(kn, names[j])
		}
	}
	if len(kn) == p {
		return names, design
	}
	kd := make([][]float64, len(design))
	for r := range design {
		var row []float64
		for j := 0; j < p; j++ {
			if keep[j] {
				row = append(row, design[r][j])
			}
		}
		kd[r] = row
	}
	return kn, kd
}

// nsbasis - natural cubic spline basis columns over x: the identity column
// plus one curl per interior knot pair; knots sit at quantiles and the
// function runs linear beyond the boundary knots
func nsbasis(x []float64, df int) [][]float64 {
	// knots: df+1 of them, quantiles of x, boundary included
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	nk := df + 1
	var knots []float64
	for i := 0; i < nk; i++ {
		q := sorted[(len(sorted)-1)*i/(nk-1)]
		if len(knots) == 0 || q != knots[len(knots)-1] {
			knots = append(knots, q)
		}
	}

	// too little spread for curvature: hand back the identity column alone
	if len(knots) < 3 {
		return [][]float64{append([]float64(nil), x...)}
	}

	kk := len(knots)
	last := knots[kk-1]
	penult := knots[kk-2]

	cube := func(u float64) float64 {
		if u > 0 {
			return u * u * u
		}
		return 0.0
	}
	dk := func(xi float64, knot float64) float64 {
		return (cube(xi-knot) - cube(xi-last)) / (last - knot)
	}

	cols := [][]float64{append([]float64(nil), x...)}
	for k := 0; k < kk-2; k++ {
		col := make([]float64, len(x))
		for i, xi := range x {
			col[i] = dk(xi, knots[k]) - dk(xi, penult)
		}
		cols = append(cols, col)
	}
	return cols
}
