//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/e-gun/SurveyTopicsGo/internal/db"
	"github.com/e-gun/SurveyTopicsGo/internal/dtm"
	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/stm"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/svy"
	"github.com/e-gun/SurveyTopicsGo/internal/txt"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// the pipeline walks lettered stages from the raw export to a stored topic
// model; every stage snapshots its output under the run fingerprint, and a
// rerun that fingerprints to stored work picks up after the last match

// Run - drive the full pipeline for the configured input file
func Run() *str.TopicModel {
	cfg := stm.ModelConfig()
	tm := RunPipeline(lnch.Config.Input, cfg, lnch.Config.WorkerCount)
	TopicReport(tm)
	PrevalenceReport(tm)
	return tm
}

// RunPipeline - every stage from the csv export to the fitted topics
func RunPipeline(input string, cfg stm.LDAConfig, workers int) *str.TopicModel {
	const (
		MSG1 = `%d columns and %d rows subsetted from '%s'`
		MSG2 = `%d scored observations survived cleaning`
		MSG3 = `%d x %d matrix built; %d held-out cells masked`
		MSG4 = `sweep visited %d values of K`
		MSG5 = `final model fitted at K=%d`
	)

	start := time.Now()
	previous := time.Now()

	fp := fingerprintrun(input, cfg)

	// [A] subset the export to the allow-listed columns
	table := subsetstage(fp, input)
	Msg.Timer("A", fmt.Sprintf(MSG1, len(table.Header), len(table.Rows), input), start, previous)
	previous = time.Now()

	// [B] recode, score, and scrub down to the analysis table
	obs := cleanstage(fp, table)
	Msg.Timer("B", fmt.Sprintf(MSG2, len(obs)), start, previous)
	previous = time.Now()

	// [C] tokenize, prune, build the matrix, and mask the held-out cells
	m, kept, h := matrixstage(fp, obs, cfg.Seed)
	d, v := m.Dims()
	Msg.Timer("C", fmt.Sprintf(MSG3, d, v, len(h.Missing)), start, previous)
	previous = time.Now()
	Msg.MemStats("matrixstage()")

	// [D] fit the candidate grid and score every K
	dd := sweepstage(fp, h, cfg, workers)
	Msg.Timer("D", fmt.Sprintf(MSG4, len(dd)), start, previous)
	previous = time.Now()
	SweepReport(dd)

	// [E] refit at the chosen K and regress prevalence on the covariates
	tm := finalstage(fp, m, kept, cfg, workers)
	Msg.Timer("E", fmt.Sprintf(MSG5, tm.K), start, previous)

	return tm
}

// subsetstage - load the export; only the allow-listed columns survive
func subsetstage(fp string, input string) *str.SurveyTable {
	var t str.SurveyTable
	if db.ArtifactCheck(fp, vv.STAGESUBSET) {
		if e := db.ArtifactFetch(fp, vv.STAGESUBSET, &t); e == nil {
			replaynote(vv.STAGESUBSET)
			return &t
		}
	}

	tt, err := svy.LoadSurvey(input)
	Msg.EC(err)
	db.ArtifactAdd(fp, vv.STAGESUBSET, tt)
	return tt
}

// cleanstage - typed observations with composites, scrubbed for analysis
func cleanstage(fp string, t *str.SurveyTable) []str.Observation {
	var obs []str.Observation
	if db.ArtifactCheck(fp, vv.STAGECLEAN) {
		if e := db.ArtifactFetch(fp, vv.STAGECLEAN, &obs); e == nil {
			replaynote(vv.STAGECLEAN)
			return obs
		}
	}

	oo, err := svy.Recode(t)
	Msg.EC(err)
	oo = svy.Score(oo)
	oo = txt.Scrub(oo)
	db.ArtifactAdd(fp, vv.STAGECLEAN, oo)
	return oo
}

// matrixstage - the document-term matrix, its metadata, and the held-out split
func matrixstage(fp string, obs []str.Observation, seed uint64) (*str.DocTermMatrix, []str.Observation, *str.HeldoutSplit) {
	var snap matrixsnapshot
	if db.ArtifactCheck(fp, vv.STAGEMATRIX) {
		if e := db.ArtifactFetch(fp, vv.STAGEMATRIX, &snap); e == nil {
			replaynote(vv.STAGEMATRIX)
			return snap.rebuild()
		}
	}

	rows := txt.Tokenize(obs, txt.StopSet())
	rows = txt.PruneRare(rows)

	m, kept, err := dtm.Build(rows, obs)
	Msg.EC(err)
	h := dtm.Split(m, seed)

	db.ArtifactAdd(fp, vv.STAGEMATRIX, snapshotmatrix(m, kept, h))
	return m, kept, h
}

// sweepstage - fit the whole K grid against the training split
func sweepstage(fp string, h *str.HeldoutSplit, cfg stm.LDAConfig, workers int) []str.ModelDiagnostics {
	var dd []str.ModelDiagnostics
	if db.ArtifactCheck(fp, vv.STAGESWEEP) {
		if e := db.ArtifactFetch(fp, vv.STAGESWEEP, &dd); e == nil {
			replaynote(vv.STAGESWEEP)
			return dd
		}
	}

	dd = stm.RunSweep(h, cfg, workers)
	db.ArtifactAdd(fp, vv.STAGESWEEP, dd)
	db.DiagnosticsAdd(fp, dd)
	return dd
}

// finalstage - refit at the chosen K; the fitted model is the run's payload
func finalstage(fp string, m *str.DocTermMatrix, kept []str.Observation, cfg stm.LDAConfig, workers int) *str.TopicModel {
	var tm str.TopicModel
	if db.ArtifactCheck(fp, vv.STAGEFINAL) {
		if e := db.ArtifactFetch(fp, vv.STAGEFINAL, &tm); e == nil {
			replaynote(vv.STAGEFINAL)
			return &tm
		}
	}

	fitted, err := stm.FitFinal(m, kept, cfg, workers, fp)
	Msg.EC(err)
	db.ArtifactAdd(fp, vv.STAGEFINAL, fitted)
	return fitted
}

func replaynote(stage string) {
	const (
		MSG = `reusing the stored '%s' snapshot`
	)
	Msg.PEEK(fmt.Sprintf(MSG, stage))
}

// fingerprintrun - derive a unique md5 for any given mix of input & model settings
func fingerprintrun(input string, cfg stm.LDAConfig) string {
	const MSG1 = "pipeline fingerprint: "

	chkf := func(err error) { Msg.EF(err, "fingerprintrun()") }

	// unless you sort, you do not get repeatable results from the maps

	cols := make([]string, len(vv.TheColumns))
	copy(cols, vv.TheColumns)
	sort.Strings(cols)

	stops := gen.StringMapKeysIntoSlice(txt.StopSet())
	sort.Strings(stops)

	f1, e1 := json.Marshal(cols)
	chkf(e1)
	f2, e2 := json.Marshal(stops)
	chkf(e2)
	f3, e3 := json.Marshal(cfg)
	chkf(e3)

	f1 = append(f1, f2...)
	f1 = append(f1, f3...)
	f1 = append(f1, []byte(input)...)

	m := fmt.Sprintf("%x", md5.Sum(f1))
	Msg.TMI(MSG1 + m)

	return m
}
