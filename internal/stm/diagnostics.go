//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

//
// PER-MODEL DIAGNOSTICS
//

// topwords - indices of a topic's vv.TOPNWORDS highest-probability words
func (m *Model) topwords(topic int) []int {
	_, v := m.Phi.Dims()
	idx := make([]int, v)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return m.Phi.At(topic, idx[a]) > m.Phi.At(topic, idx[b])
	})
	n := vv.TOPNWORDS
	if n > v {
		n = v
	}
	return idx[:n]
}

// Exclusivity - per-topic FREX score: the harmonic blend of how exclusive and
// how frequent each of the topic's top words is, averaged over those words
func Exclusivity(m *Model) []float64 {
	k, v := m.Phi.Dims()

	// column mass across topics; exclusivity is a word's share of it
	colsum := make([]float64, v)
	for t := 0; t < k; t++ {
		for w := 0; w < v; w++ {
			colsum[w] += m.Phi.At(t, w)
		}
	}

	ecdf := func(vals []float64) []float64 {
		idx := make([]int, len(vals))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })
		out := make([]float64, len(vals))
		for rank, w := range idx {
			out[w] = float64(rank+1) / float64(len(vals))
		}
		return out
	}

	scores := make([]float64, k)
	for t := 0; t < k; t++ {
		ex := make([]float64, v)
		fr := make([]float64, v)
		for w := 0; w < v; w++ {
			if colsum[w] > 0 {
				ex[w] = m.Phi.At(t, w) / colsum[w]
			}
			fr[w] = m.Phi.At(t, w)
		}
		excdf := ecdf(ex)
		frcdf := ecdf(fr)

		top := m.topwords(t)
		total := 0.0
		for _, w := range top {
			total += 1.0 / (vv.FREXWT/excdf[w] + (1.0-vv.FREXWT)/frcdf[w])
		}
		scores[t] = total / float64(len(top))
	}
	return scores
}

// SemanticCoherence - per-topic UMass coherence of the top words against the
// document co-occurrence counts of the matrix the model was trained on
func SemanticCoherence(m *Model, dm *str.DocTermMatrix) []float64 {
	k, _ := m.Phi.Dims()

	// doc sets for every word that shows up in some topic's top list
	wanted := make(map[int]bool)
	tops := make([][]int, k)
	for t := 0; t < k; t++ {
		tops[t] = m.topwords(t)
		for _, w := range tops[t] {
			wanted[w] = true
		}
	}

	docsof := make(map[int]map[int]bool, len(wanted))
	dm.Counts.DoNonZero(func(d int, w int, n float64) {
		if wanted[w] {
			if docsof[w] == nil {
				docsof[w] = make(map[int]bool)
			}
			docsof[w][d] = true
		}
	})

	codocs := func(a int, b int) float64 {
		small, large := docsof[a], docsof[b]
		if len(large) < len(small) {
			small, large = large, small
		}
		n := 0.0
		for d := range small {
			if large[d] {
				n++
			}
		}
		return n
	}

	scores := make([]float64, k)
	for t := 0; t < k; t++ {
		top := tops[t]
		c := 0.0
		for i := 1; i < len(top); i++ {
			for j := 0; j < i; j++ {
				dj := float64(len(docsof[top[j]]))
				if dj == 0 {
					continue
				}
				c += math.Log((codocs(top[i], top[j]) + 1.0) / dj)
			}
		}
		scores[t] = c
	}
	return scores
}

// EvalHeldout - expected per-token log-likelihood of the masked counts under
// the trained model
func EvalHeldout(m *Model, missing []str.MaskedCell) float64 {
	k, _ := m.Theta.Dims()

	ll := 0.0
	mass := 0.0
	for _, c := range missing {
		p := 0.0
		for t := 0; t < k; t++ {
			p += m.Theta.At(t, c.Doc) * m.Phi.At(t, c.Term)
		}
		if p < 1e-12 {
			p = 1e-12
		}
		ll += c.Count * math.Log(p)
		mass += c.Count
	}
	if mass == 0 {
		return math.Inf(-1)
	}
	return ll / mass
}

// CheckResiduals - pearson residual dispersion of the fitted multinomial plus
// the chi-squared tail probability of the total; a dispersion well over 1
// says the corpus wants more topics than K
func CheckResiduals(m *Model, dm *str.DocTermMatrix) (float64, float64) {
	k, _ := m.Theta.Dims()
	d, v := dm.Counts.Dims()

	// per-document token totals
	ntot := make([]float64, d)
	grand := 0.0
	dm.Counts.DoNonZero(func(i int, j int, n float64) {
		ntot[i] += n
		grand += n
	})

	// all-cells chi-squared collapses to a walk over the stored cells:
	// a zero cell contributes exactly its expectation, and the
	// expectations across any document sum to its token total
	x2 := grand
	dm.Counts.DoNonZero(func(i int, j int, n float64) {
		p := 0.0
		for t := 0; t < k; t++ {
			p += m.Theta.At(t, i) * m.Phi.At(t, j)
		}
		mu := ntot[i] * p
		if mu > 0 {
			x2 += (n-mu)*(n-mu)/mu - mu
		}
	})

	df := d*(v-1) - (k*(v-1) + d*(k-1))
	if df < 1 {
		df = 1
	}

	dispersion := x2 / float64(df)
	pval := distuv.ChiSquared{K: float64(df)}.Survival(x2)

	return dispersion, pval
}
