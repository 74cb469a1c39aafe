//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// the diagnostics table holds one row per candidate K so model selection can be
// replayed with plain sql; the full per-topic vectors live in the sweep snapshot

// DiagnosticsDBInit - initialize vv.DIAGTABLE
func DiagnosticsDBInit() {
	const (
		CREATE = `
			CREATE TABLE %s (
			fingerprint character(32),
			runid character(36),
			k integer,
			exclusivity real,
			coherence real,
			heldout real,
			dispersion real,
			dispersionp real,
			bound real,
			lbound real,
			iterations integer,
			seconds real,
			failure text
			)`
		EXISTS = "already exists"
	)

	ex := fmt.Sprintf(CREATE, vv.DIAGTABLE)
	_, err := SQLStore.ExecContext(context.Background(), ex)
	if err != nil {
		m := err.Error()
		if !strings.Contains(m, EXISTS) {
			Msg.EC(err)
		}
	} else {
		Msg.FYI("DiagnosticsDBInit(): success")
	}
}

// DiagnosticsAdd - store the per-K records from one sweep
func DiagnosticsAdd(fp string, dd []str.ModelDiagnostics) {
	const (
		MSG1 = `DiagnosticsAdd() stored %d rows for %s`
		FAIL = `insert prepare failed: %s`
		INS  = `
			INSERT INTO %s
				(fingerprint, runid, k, exclusivity, coherence, heldout,
				dispersion, dispersionp, bound, lbound, iterations, seconds, failure)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	)

	runid := uuid.New().String()

	// [a] prepare the statement
	q := fmt.Sprintf(INS, vv.DIAGTABLE)
	stmt, err := SQLStore.PrepareContext(context.Background(), q)
	if err != nil {
		Msg.WARN(fmt.Sprintf(FAIL, err.Error()))
		return
	}

	// [b] iterate over the records and insert
	for _, d := range dd {
		_, e := stmt.Exec(fp, runid, d.K, d.MeanExclusivity(), d.MeanCoherence(), d.Heldout,
			d.Dispersion, d.DispersionP, d.Bound, d.LBound, d.Iterations, d.Seconds, d.Failure)
		Msg.EC(e)
	}
	Msg.EC(stmt.Close())

	Msg.PEEK(fmt.Sprintf(MSG1, len(dd), fp))
}
