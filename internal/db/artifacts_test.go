package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-gun/SurveyTopicsGo/internal/db"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

type snapshot struct {
	Label  string
	Counts map[string]int
	Grid   []int
}

func TestArtifactRoundTrip(t *testing.T) {
	db.OpenArtifactDB(filepath.Join(t.TempDir(), "artifacts.sqlite"))

	fp := "0123456789abcdef0123456789abcdef"
	assert.False(t, db.ArtifactCheck(fp, vv.STAGEMATRIX))

	in := snapshot{
		Label:  "cleaned",
		Counts: map[string]int{"cg1_1": 4, "cg2_1": 9},
		Grid:   []int{5, 10, 20},
	}
	db.ArtifactAdd(fp, vv.STAGEMATRIX, in)
	assert.True(t, db.ArtifactCheck(fp, vv.STAGEMATRIX))

	var out snapshot
	require.NoError(t, db.ArtifactFetch(fp, vv.STAGEMATRIX, &out))
	assert.Equal(t, in, out)

	// same fingerprint, different stage: still empty
	assert.False(t, db.ArtifactCheck(fp, vv.STAGEFINAL))
	var miss snapshot
	assert.Error(t, db.ArtifactFetch(fp, vv.STAGEFINAL, &miss))
}

func TestArtifactReset(t *testing.T) {
	db.OpenArtifactDB(filepath.Join(t.TempDir(), "artifacts.sqlite"))

	fp := "ffffffffffffffffffffffffffffffff"
	db.ArtifactAdd(fp, vv.STAGESWEEP, snapshot{Label: "soon gone"})
	require.True(t, db.ArtifactCheck(fp, vv.STAGESWEEP))

	db.ArtifactReset()

	// ArtifactCheck rebuilds the dropped table on its way to "no"
	assert.False(t, db.ArtifactCheck(fp, vv.STAGESWEEP))
	assert.False(t, db.ArtifactCheck(fp, vv.STAGESWEEP))
}

func TestDiagnosticsAdd(t *testing.T) {
	db.OpenArtifactDB(filepath.Join(t.TempDir(), "artifacts.sqlite"))

	dd := []str.ModelDiagnostics{
		{K: 5, Exclusivity: []float64{0.5, 0.7}, Coherence: []float64{-1, -2}, Heldout: -3.1, Iterations: 4},
		{K: 10, Failure: "fit panicked: boom"},
	}
	db.DiagnosticsAdd("00000000000000000000000000000000", dd)

	var n int
	require.NoError(t, db.SQLStore.QueryRow("SELECT COUNT(*) FROM "+vv.DIAGTABLE).Scan(&n))
	assert.Equal(t, 2, n)
}
