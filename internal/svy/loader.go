//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package svy

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// LoadSurvey - read the whole export, then keep only the columns on the allow-list
func LoadSurvey(path string) (*str.SurveyTable, error) {
	const (
		ERR1 = "LoadSurvey() cannot open '%s': %w"
		ERR2 = "LoadSurvey() cannot parse '%s': %w"
		ERR3 = "LoadSurvey() did not find required column '%s' in '%s'"
		ERR4 = "LoadSurvey() found column '%s' more than once in '%s'"
		MSG1 = "LoadSurvey() read %d rows and kept %d columns from '%s'"
	)

	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf(ERR1, path, e)
	}
	defer func() {
		_ = f.Close()
	}()

	// [a] slurp the export whole; a ragged or truncated file is unusable

	r := csv.NewReader(f)
	all, e := r.ReadAll()
	if e != nil {
		return nil, fmt.Errorf(ERR2, path, e)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf(ERR3, vv.COLID, path)
	}

	// [b] every required column has to be present in the header, and present once

	head := all[0]
	pos := make(map[string]int, len(head))
	for i, h := range head {
		pos[h] = i
	}

	for _, c := range vv.TheColumns {
		if _, ok := pos[c]; !ok {
			return nil, fmt.Errorf(ERR3, c, path)
		}
		if gen.ContainsN(head, c) > 1 {
			return nil, fmt.Errorf(ERR4, c, path)
		}
	}

	// [c] project the rows onto the allow-list, preserving input order

	cols := make(map[string]int, len(vv.TheColumns))
	for i, c := range vv.TheColumns {
		cols[c] = i
	}

	rows := make([][]string, 0, len(all)-1)
	for _, rr := range all[1:] {
		nr := make([]string, len(vv.TheColumns))
		for i, c := range vv.TheColumns {
			nr[i] = rr[pos[c]]
		}
		rows = append(rows, nr)
	}

	t := &str.SurveyTable{
		Source: path,
		Header: append([]string(nil), vv.TheColumns...),
		Cols:   cols,
		Rows:   rows,
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(rows), len(t.Header), path))

	return t, nil
}
