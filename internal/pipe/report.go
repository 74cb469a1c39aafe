//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// SweepReport - the per-K table that model selection reads
func SweepReport(dd []str.ModelDiagnostics) {
	const (
		HED = "sweep results over %d candidates; set ChosenK in '%s' to taste"
		BAR = "   K      heldout  exclusivity  coherence  dispersion   disp(p)         bound  chkpts  seconds"
		ROW = "%4d  %11.4f  %11.4f  %9.3f  %10.3f  %8.3f  %12.0f  %6d  %7.1f"
		BAD = "%4d  failed: %s"
	)

	p := message.NewPrinter(language.English)

	Msg.MAND(fmt.Sprintf(HED, len(dd), vv.CONFIGMODEL))
	Msg.MAND(BAR)
	for _, d := range dd {
		if d.Failure != "" {
			Msg.MAND(fmt.Sprintf(BAD, d.K, d.Failure))
			continue
		}
		Msg.MAND(p.Sprintf(ROW, d.K, d.Heldout, d.MeanExclusivity(), d.MeanCoherence(),
			d.Dispersion, d.DispersionP, d.Bound, d.Iterations, d.Seconds))
	}
}

// TopicReport - the top words of every fitted topic
func TopicReport(tm *str.TopicModel) {
	const (
		HED = "final model: %d topics over %d documents and %d terms (seed %d)"
		ROW = "topic %2d: %s"
	)

	p := message.NewPrinter(language.English)

	Msg.MAND(p.Sprintf(HED, tm.K, len(tm.DocIDs), len(tm.Terms), tm.Seed))
	for t := 0; t < tm.K; t++ {
		Msg.MAND(fmt.Sprintf(ROW, t+1, strings.Join(topterms(tm, t, vv.TOPNWORDS), " ")))
	}
}

// topterms - the n highest-probability words of one topic
func topterms(tm *str.TopicModel, topic int, n int) []string {
	row := tm.TopicsOverWords[topic]
	idx := make([]int, len(row))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return row[idx[a]] > row[idx[b]] })

	n = min(n, len(idx))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = tm.Terms[idx[i]]
	}
	return out
}

// PrevalenceReport - per-topic regression coefficients on the covariates
func PrevalenceReport(tm *str.TopicModel) {
	const (
		HED  = "prevalence fit: %d complete-case documents (%d dropped)"
		NONE = "prevalence fit: no coefficients stored"
		ROW  = "topic %2d: %s"
		CW   = 12
	)

	pv := tm.Prevalence
	if len(pv.Coef) == 0 {
		Msg.NOTE(NONE)
		return
	}

	Msg.MAND(fmt.Sprintf(HED, pv.Used, pv.Dropped))

	hdr := make([]string, len(pv.Names))
	for i, n := range pv.Names {
		hdr[i] = fmt.Sprintf("%*s", CW, n)
	}
	Msg.MAND("          " + strings.Join(hdr, ""))

	for t := 0; t < len(pv.Coef); t++ {
		cc := make([]string, len(pv.Coef[t]))
		for i, c := range pv.Coef[t] {
			cc[i] = fmt.Sprintf("%*.3f", CW, c)
		}
		Msg.MAND(fmt.Sprintf(ROW, t+1, strings.Join(cc, "")))
	}
}
