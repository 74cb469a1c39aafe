//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stm

import (
	"fmt"
	"math"

	"github.com/e-gun/nlp"
	"github.com/e-gun/sparse"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// Model - one trained topic model still in matrix form
type Model struct {
	K          int
	Seed       uint64
	Theta      mat.Matrix // topics x documents
	Phi        mat.Matrix // topics x words
	BoundTrace []float64
	Iterations int // checkpoints consumed before the bound settled
}

// Fit - run variational LDA on the document-term counts at one K with one
// seed, then walk vv.TheBoundSchedule re-inferring with ever more passes
// until the training bound stops moving; the trace of those bounds rides
// along on the model
func Fit(m *str.DocTermMatrix, k int, seed uint64, cfg LDAConfig, workers int) (*Model, error) {
	const (
		ERR1 = "Fit() could not train a %d topic model: %v"
		ERR2 = "Fit() could not re-infer at checkpoint %d: %v"
	)

	td := m.TermDocs()

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Processes = workers
	lda.Iterations = cfg.LDAIterations
	lda.TransformationPasses = cfg.LDAXformPasses
	lda.BurnInPasses = cfg.BurnInPasses
	lda.ChangeEvaluationFrequency = cfg.ChangeEvalFrq
	lda.PerplexityEvaluationFrequency = cfg.PerplexEvalFrq
	lda.PerplexityTolerance = cfg.PerplexTol
	lda.Rnd = rand.New(rand.NewSource(seed))

	if _, err := lda.FitTransform(td); err != nil {
		return nil, fmt.Errorf(ERR1, k, err)
	}

	phi := lda.Components()

	var trace []float64
	var theta mat.Matrix
	for _, passes := range vv.TheBoundSchedule {
		lda.TransformationPasses = passes
		th, err := lda.Transform(td)
		if err != nil {
			return nil, fmt.Errorf(ERR2, passes, err)
		}
		theta = th

		bound := loglik(td, th, phi)
		trace = append(trace, bound)
		if len(trace) > 1 {
			prev := trace[len(trace)-2]
			if math.Abs(bound-prev) < vv.BOUNDTOL*math.Abs(prev) {
				break
			}
		}
	}

	return &Model{
		K:          k,
		Seed:       seed,
		Theta:      theta,
		Phi:        phi,
		BoundTrace: trace,
		Iterations: len(trace),
	}, nil
}

// Bound - the converged training bound, i.e. the last trace entry
func (m *Model) Bound() float64 {
	if len(m.BoundTrace) == 0 {
		return math.Inf(-1)
	}
	return m.BoundTrace[len(m.BoundTrace)-1]
}

// LBound - the bound plus log(K!); label swaps leave a K-topic model unchanged
func (m *Model) LBound() float64 {
	lg, _ := math.Lgamma(float64(m.K) + 1)
	return m.Bound() + lg
}

// loglik - sum of observed counts times the log of the model's token
// probability; td is terms x documents, theta and phi are topic-major
func loglik(td *sparse.CSR, theta mat.Matrix, phi mat.Matrix) float64 {
	k, _ := theta.Dims()

	ll := 0.0
	td.DoNonZero(func(w int, d int, n float64) {
		p := 0.0
		for t := 0; t < k; t++ {
			p += theta.At(t, d) * phi.At(t, w)
		}
		if p > 0 {
			ll += n * math.Log(p)
		}
	})
	return ll
}
