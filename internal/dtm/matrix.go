//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"fmt"
	"sort"

	"github.com/e-gun/sparse"

	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// Build - group (obs_id, term), count, pivot into sparse counts; rows are the
// observations that still own at least one token, columns the sorted vocabulary.
// The metadata comes back re-filtered to exactly the matrix rows.
func Build(rows []str.TokenRow, obs []str.Observation) (*str.DocTermMatrix, []str.Observation, error) {
	const (
		ERR1 = "Build() was handed no token rows"
		ERR2 = "Build() produced an empty matrix"
		WRN1 = "Build() dropped %d token rows with obs_ids missing from the metadata"
		MSG1 = "Build() made a %d x %d matrix with %d stored counts"
	)

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf(ERR1)
	}

	known := make(map[string]bool, len(obs))
	for i := range obs {
		known[obs[i].ObsID] = true
	}

	// [a] group and count

	counts := make(map[string]map[string]float64)
	orphans := 0
	for i := range rows {
		if !known[rows[i].ObsID] {
			orphans++
			continue
		}
		if _, ok := counts[rows[i].ObsID]; !ok {
			counts[rows[i].ObsID] = make(map[string]float64)
		}
		counts[rows[i].ObsID][rows[i].Term]++
	}

	if orphans > 0 {
		Msg.WARN(fmt.Sprintf(WRN1, orphans))
	}

	if len(counts) == 0 {
		return nil, nil, fmt.Errorf(ERR2)
	}

	// [b] fix the axes: rows keep the metadata order, terms are sorted

	var kept []str.Observation
	var rowids []string
	for i := range obs {
		if _, ok := counts[obs[i].ObsID]; ok {
			kept = append(kept, obs[i])
			rowids = append(rowids, obs[i].ObsID)
		}
	}

	termset := make(map[string]bool)
	for id := range counts {
		for t := range counts[id] {
			termset[t] = true
		}
	}
	terms := make([]string, 0, len(termset))
	for t := range termset {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	rowidx := make(map[string]int, len(rowids))
	for i, id := range rowids {
		rowidx[id] = i
	}
	termidx := make(map[string]int, len(terms))
	for i, t := range terms {
		termidx[t] = i
	}

	// [c] pivot into DOK and compress

	dok := sparse.NewDOK(len(rowids), len(terms))
	for id, tt := range counts {
		for t, n := range tt {
			dok.Set(rowidx[id], termidx[t], n)
		}
	}

	m := &str.DocTermMatrix{
		RowIDs:  rowids,
		Terms:   terms,
		RowIdx:  rowidx,
		TermIdx: termidx,
		Counts:  dok.ToCSR(),
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(rowids), len(terms), m.NNZ()))

	return m, kept, nil
}
