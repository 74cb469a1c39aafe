//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/e-gun/SurveyTopicsGo/internal/db"
	"github.com/e-gun/SurveyTopicsGo/internal/dtm"
	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/pipe"
	"github.com/e-gun/SurveyTopicsGo/internal/svy"
	"github.com/e-gun/SurveyTopicsGo/internal/txt"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

func writecorpus(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(p, pipe.SelfTestCorpus(), 0644))
	return p
}

func rowsin(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.SQLStore.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSelfTestCorpusLoads(t *testing.T) {
	p := writecorpus(t)

	tab, err := svy.LoadSurvey(p)
	require.NoError(t, err)
	require.Len(t, tab.Rows, 52)

	// the export carries bookkeeping columns the analysis never sees
	require.Len(t, tab.Header, len(vv.TheColumns))
	require.NotContains(t, tab.Cols, "exportver")
	require.NotContains(t, tab.Cols, "rowid")
}

func TestSelfTestPipeline(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	lnch.LookForConfigFile()
	db.OpenArtifactDB(filepath.Join(t.TempDir(), vv.DBFILENAME))

	p := writecorpus(t)
	cfg := pipe.SelfTestConfig()

	tm := pipe.RunPipeline(p, cfg, 2)

	require.Equal(t, 3, tm.K)
	require.Equal(t, uint64(vv.DEFAULTSEED), tm.Seed)
	require.Len(t, tm.DocIDs, 45)

	// the all-rare response, the spanish rows, and the itemless row are all gone
	require.NotContains(t, tm.DocIDs, "P028_1")
	require.NotContains(t, tm.DocIDs, "P024_1")
	require.NotContains(t, tm.DocIDs, "P026_1")

	// a dropped wave still burns its sequence number
	require.Contains(t, tm.DocIDs, "P021_1")
	require.Contains(t, tm.DocIDs, "P023_2")
	require.Contains(t, tm.DocIDs, "P025_2")

	// only the ten workhorse terms clear the corpus-wide floor
	require.Equal(t, []string{"baby", "help", "money", "night", "rent",
		"school", "sleep", "tired", "work", "worry"}, tm.Terms)

	require.Len(t, tm.TopicsOverWords, tm.K)
	for _, row := range tm.TopicsOverWords {
		require.Len(t, row, len(tm.Terms))
		require.InDelta(t, 1.0, sum(row), 1e-6)
	}
	require.Len(t, tm.DocsOverTopics, len(tm.DocIDs))
	for _, row := range tm.DocsOverTopics {
		require.InDelta(t, 1.0, sum(row), 1e-6)
	}
	require.NotEmpty(t, tm.BoundTrace)

	// two caregivers never reported race and one never reported poverty
	require.Equal(t, 39, tm.Prevalence.Used)
	require.Equal(t, 6, tm.Prevalence.Dropped)
	require.Contains(t, tm.Prevalence.Names, "race_white")
	require.Contains(t, tm.Prevalence.Names, "race_other")
	require.Contains(t, tm.Prevalence.Names, "poverty")
	require.Contains(t, tm.Prevalence.Names, "month_ns1")

	// one diagnostics row per candidate K and one snapshot per stage
	require.Equal(t, len(cfg.KGrid), rowsin(t, vv.DIAGTABLE))
	require.Equal(t, 5, rowsin(t, vv.ARTIFACTTABLE))

	// a rerun replays from the store: same model back, nothing new written
	again := pipe.RunPipeline(p, cfg, 2)
	require.Equal(t, tm.DocIDs, again.DocIDs)
	require.Equal(t, tm.Terms, again.Terms)
	require.Equal(t, tm.TopicsOverWords, again.TopicsOverWords)
	require.Equal(t, tm.DocsOverTopics, again.DocsOverTopics)
	require.Equal(t, len(cfg.KGrid), rowsin(t, vv.DIAGTABLE))
	require.Equal(t, 5, rowsin(t, vv.ARTIFACTTABLE))
}

func TestSmallCohortScenario(t *testing.T) {
	// three caregivers, two waves each, one placeholder response
	rows := []string{
		"id,lang,endtime,race_1,race_2,race_3,belowpov,q1a,q1b,q1c,q2a,q2b,q2c,q3a,q3b,q4a,q4b,q5a,q5b,q6a,q6b,open_end",
		`C1,en,2020-04-01 08:00:00,1,,,1,3,2,3,2,3,2,3,2,3,2,3,2,3,2,"sleep sleep sleep sleep sleep and night night night night night"`,
		`C1,en,2020-05-01 08:00:00,1,,,1,2,3,2,3,2,3,2,3,2,3,2,3,2,3,"sleep sleep sleep sleep sleep for night night night night night"`,
		`C2,en,2020-04-02 09:00:00,,1,,0,1,2,1,2,1,2,1,2,1,2,1,2,1,2,n/a.`,
		`C2,en,2020-05-02 09:00:00,,1,,0,4,3,4,3,4,3,4,3,4,3,4,3,4,3,"no sleep sleep sleep sleep sleep just night night night night night"`,
		`C3,en,2020-04-03 10:00:00,,,1,1,2,2,3,3,2,2,3,3,2,2,3,3,2,2,"sleep sleep sleep sleep sleep then night night night night night"`,
		`C3,en,2020-05-03 10:00:00,,,1,1,3,3,2,2,3,3,2,2,3,3,2,2,3,3,"sleep sleep sleep sleep sleep till night night night night night"`,
	}

	p := filepath.Join(t.TempDir(), "cohort.csv")
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(rows, "\n")+"\n"), 0644))

	tab, err := svy.LoadSurvey(p)
	require.NoError(t, err)
	obs, err := svy.Recode(tab)
	require.NoError(t, err)
	kept := txt.Scrub(svy.Score(obs))

	require.Len(t, kept, 5)
	seen := make(map[string]bool)
	for _, o := range kept {
		require.False(t, seen[o.ObsID])
		seen[o.ObsID] = true
	}
	require.True(t, seen["C2_2"])
	require.False(t, seen["C2_1"])

	toks := txt.PruneRare(txt.Tokenize(kept, map[string]struct{}{"and": {}, "for": {}}))
	m, meta, err := dtm.Build(toks, kept)
	require.NoError(t, err)

	require.LessOrEqual(t, len(m.RowIDs), 5)
	require.Equal(t, []string{"night", "sleep"}, m.Terms)
	require.Len(t, meta, len(m.RowIDs))
}

func sum(xx []float64) float64 {
	var s float64
	for _, x := range xx {
		s += x
	}
	return s
}
