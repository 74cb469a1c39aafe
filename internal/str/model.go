//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// ModelDiagnostics - everything the sweep records about one candidate K
type ModelDiagnostics struct {
	K           int
	Exclusivity []float64 // per topic
	Coherence   []float64 // per topic
	Heldout     float64   // expected per-token log-likelihood over the masked cells
	Dispersion  float64   // pearson residual dispersion; 1.0 is nominal
	DispersionP float64   // chi-squared tail probability for the dispersion
	Bound       float64   // training bound at convergence
	LBound      float64   // bound + log(K!)
	Iterations  int       // checkpoints consumed before the bound settled
	Seconds     float64
	Failure     string // empty unless the fit died
}

func (d *ModelDiagnostics) MeanExclusivity() float64 {
	return meanof(d.Exclusivity)
}

func (d *ModelDiagnostics) MeanCoherence() float64 {
	return meanof(d.Coherence)
}

func meanof(vv []float64) float64 {
	if len(vv) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range vv {
		s += v
	}
	return s / float64(len(vv))
}

// PrevalenceFit - per-topic regression of topic share on the document covariates
type PrevalenceFit struct {
	Names   []string    // design matrix column names
	Coef    [][]float64 // K rows, one coefficient per design column
	Used    int         // documents with complete covariates
	Dropped int         // documents lost to incomplete covariates
}

// TopicModel - the final fit, whole, as persisted
type TopicModel struct {
	K               int
	Seed            uint64
	Terms           []string
	DocIDs          []string
	TopicsOverWords [][]float64 // K x V, rows sum to 1
	DocsOverTopics  [][]float64 // D x K, rows sum to 1
	BoundTrace      []float64
	Iterations      int
	Prevalence      PrevalenceFit
	Fingerprint     string
}
