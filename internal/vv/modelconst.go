//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	LDAITER         = 200
	LDAXFORMPASSES  = 100
	LDABURNINPASSES = 2
	LDACHGEVALFRQ   = 10
	LDAPERPEVALFRQ  = 10
	LDAPERPTOL      = 1e-2

	DEFAULTSEED    = 1729
	DEFAULTCHOSENK = 20

	HELDOUTDOCSHARE  = 0.1 // share of documents that donate cells to the held-out set
	HELDOUTCELLSHARE = 0.5 // share of a donor document's nonzero cells that get masked

	BOUNDTOL  = 1e-4 // relative change in the bound that counts as converged
	TOPNWORDS = 10   // words per topic used by exclusivity and coherence
	FREXWT    = 0.7

	SPLINEDF = 5 // natural cubic spline basis size for the month covariate

	ARTIFACTTABLE = "stg_artifacts"
	DIAGTABLE     = "stg_diagnostics"

	STAGESUBSET = "subset"
	STAGECLEAN  = "clean"
	STAGEMATRIX = "matrix"
	STAGESWEEP  = "sweep"
	STAGEFINAL  = "final"
)

// the K values the sweep visits unless the model config says otherwise

var TheKGrid = []int{5, 10, 20, 30, 40, 50, 60, 70, 80, 100}

// TransformationPasses checkpoints for the bound trace; convergence is
// declared at the first checkpoint where the relative change in the
// training bound drops under BOUNDTOL

var TheBoundSchedule = []int{5, 10, 20, 40, 60, 80, 100, 150, 200}
