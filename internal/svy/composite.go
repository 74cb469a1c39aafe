//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package svy

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// Score - construct means, z-scores, and the two negated composites;
// the z reference population is everyone present before the text filters run
func Score(obs []str.Observation) []str.Observation {
	const (
		MSG1 = "Score() standardized %d constructs over %d observations"
	)

	out := make([]str.Observation, len(obs))
	copy(out, obs)

	names := append(append([]string(nil), vv.ParentConstructs...), vv.ChildConstructs...)

	// [a] per-construct row means; a construct with no items answered stays missing

	for i := range out {
		for _, cn := range names {
			out[i].SetConstruct(cn, rowmean(&out[i], vv.TheConstructs[cn]))
		}
	}

	// [b] standardize each construct column over the full sample

	for _, cn := range names {
		var vals []float64
		for i := range out {
			if v := out[i].Construct(cn); v != nil {
				vals = append(vals, *v)
			}
		}
		if len(vals) < 2 {
			continue
		}
		mu := stat.Mean(vals, nil)
		sd := stat.StdDev(vals, nil)
		if sd == 0 {
			continue
		}
		for i := range out {
			if v := out[i].Construct(cn); v != nil {
				z := (*v - mu) / sd
				out[i].SetZ(cn, &z)
			}
		}
	}

	// [c] negated group means: higher composite = better off

	for i := range out {
		out[i].ParentWB = negmean(collectz(&out[i], vv.ParentConstructs))
		out[i].ChildWB = negmean(collectz(&out[i], vv.ChildConstructs))
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(names), len(out)))

	return out
}

// rowmean - mean of the answered items; nil when nothing was answered
func rowmean(o *str.Observation, items []string) *float64 {
	var vals []float64
	for _, it := range items {
		if v := o.Item(it); v != nil {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	return gen.Ptr(stat.Mean(vals, nil))
}

func collectz(o *str.Observation, names []string) []float64 {
	var vals []float64
	for _, cn := range names {
		if z := o.Z(cn); z != nil {
			vals = append(vals, *z)
		}
	}
	return vals
}

// negmean - distress runs high-is-bad; the composites run high-is-well
func negmean(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	return gen.Ptr(-stat.Mean(vals, nil))
}
