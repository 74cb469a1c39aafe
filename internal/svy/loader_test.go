package svy_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-gun/SurveyTopicsGo/internal/svy"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

func writecsv(t *testing.T, lines []string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "export.csv")
	err := os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	require.NoError(t, err)
	return p
}

func fullheader() []string {
	return append([]string(nil), vv.TheColumns...)
}

func blankrow(n int) string {
	return strings.Repeat(",", n-1)
}

func TestLoadSurveyMissingFile(t *testing.T) {
	_, err := svy.LoadSurvey(filepath.Join(t.TempDir(), "no-such-export.csv"))
	require.Error(t, err)
}

func TestLoadSurveyMissingColumn(t *testing.T) {
	var head []string
	for _, c := range vv.TheColumns {
		if c != "q4b" {
			head = append(head, c)
		}
	}
	p := writecsv(t, []string{
		strings.Join(head, ","),
		blankrow(len(head)),
	})

	_, err := svy.LoadSurvey(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q4b")
}

func TestLoadSurveyDuplicateColumn(t *testing.T) {
	// the last duplicate would silently win at projection time
	head := append(fullheader(), "lang")
	p := writecsv(t, []string{
		strings.Join(head, ","),
		blankrow(len(head)),
	})

	_, err := svy.LoadSurvey(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lang")
	assert.Contains(t, err.Error(), "more than once")
}

func TestLoadSurveyProjectsColumns(t *testing.T) {
	// an extra leading column must vanish and must not shift anything else
	head := append([]string{"extra"}, fullheader()...)
	row1 := append([]string{"junk"}, make([]string, len(vv.TheColumns))...)
	row1[1] = "cg1"               // id
	row1[2] = "en"                // lang
	row1[len(row1)-1] = "we coped" // open_end

	p := writecsv(t, []string{
		strings.Join(head, ","),
		strings.Join(row1, ","),
	})

	tab, err := svy.LoadSurvey(p)
	require.NoError(t, err)

	assert.Equal(t, vv.TheColumns, tab.Header)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "cg1", tab.Val(0, vv.COLID))
	assert.Equal(t, "en", tab.Val(0, vv.COLLANG))
	assert.Equal(t, "we coped", tab.Val(0, vv.COLTEXT))
	_, gone := tab.Cols["extra"]
	assert.False(t, gone)
}

func TestLoadSurveyEmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(p, []byte(""), 0644))

	_, err := svy.LoadSurvey(p)
	require.Error(t, err)
}
