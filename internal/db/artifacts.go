//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

var (
	Msg      = lnch.NewMessageMakerWithDefaults()
	SQLStore *sql.DB
)

// every run writes its stage snapshots into a single sqlite file; a snapshot is
// a gzipped json blob keyed by the run fingerprint plus a stage name, and a
// rerun that hashes to a stored fingerprint can skip the work behind it

// OpenArtifactDB - open (or create) the sqlite file that accumulates stored runs
func OpenArtifactDB(path string) {
	const (
		FAIL1 = "OpenArtifactDB() could not open '%s': %s"
	)

	store, err := sql.Open("sqlite", path)
	if err != nil {
		Msg.MAND(fmt.Sprintf(FAIL1, path, err.Error()))
		Msg.ExitOrHang(0)
	}
	SQLStore = store

	ArtifactDBInit()
	DiagnosticsDBInit()
}

// ArtifactDBInit - initialize vv.ARTIFACTTABLE
func ArtifactDBInit() {
	const (
		CREATE = `
			CREATE TABLE %s (
			fingerprint character(32),
			stage character varying(12),
			runid character(36),
			stamp character varying(24),
			datasize integer,
			stagedata blob
			)`
		EXISTS = "already exists"
	)

	ex := fmt.Sprintf(CREATE, vv.ARTIFACTTABLE)
	_, err := SQLStore.ExecContext(context.Background(), ex)
	if err != nil {
		m := err.Error()
		if !strings.Contains(m, EXISTS) {
			Msg.EC(err)
		}
	} else {
		Msg.FYI("ArtifactDBInit(): success")
	}
}

// ArtifactCheck - has a stage with this fingerprint already been stored?
func ArtifactCheck(fp string, stage string) bool {
	const (
		Q   = `SELECT fingerprint FROM %s WHERE fingerprint = ? AND stage = ? LIMIT 1`
		F   = `ArtifactCheck() found %s.%s`
		DNE = "no such table"
	)

	q := fmt.Sprintf(Q, vv.ARTIFACTTABLE)
	var found string
	err := SQLStore.QueryRowContext(context.Background(), q, fp, stage).Scan(&found)
	if err != nil {
		if strings.Contains(err.Error(), DNE) {
			ArtifactDBInit()
		}
		// sql.ErrNoRows lands here as well: nothing stored yet
		return false
	}

	Msg.TMI(fmt.Sprintf(F, fp, stage))
	return true
}

// ArtifactAdd - gzip a stage snapshot and store it under fingerprint + stage
func ArtifactAdd(fp string, stage string, payload any) {
	const (
		MSG1 = "ArtifactAdd(): %s.%s (%dk)"
		FAIL = "ArtifactAdd() failed when calling json.Marshal(payload): nothing stored"
		INS  = `
			INSERT INTO %s
				(fingerprint, stage, runid, stamp, datasize, stagedata)
			VALUES (?, ?, ?, ?, ?, ?)`
		GZ = gzip.BestSpeed
	)

	eb, err := json.Marshal(payload)
	if err != nil {
		Msg.NOTE(FAIL)
		return
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	Msg.EC(err)
	_, err = zw.Write(eb)
	Msg.EC(err)
	err = zw.Close()
	Msg.EC(err)

	b := buf.Bytes()

	ex := fmt.Sprintf(INS, vv.ARTIFACTTABLE)
	_, err = SQLStore.ExecContext(context.Background(), ex, fp, stage, uuid.New().String(), time.Now().Format(time.RFC3339), len(b), b)
	Msg.EC(err)

	Msg.TMI(fmt.Sprintf(MSG1, fp, stage, len(b)/1024))
	buf.Reset()
}

// ArtifactFetch - pull a stage snapshot back out of the store
func ArtifactFetch(fp string, stage string, payload any) error {
	const (
		MSG2 = "ArtifactFetch() pulled an empty snapshot for %s.%s"
		Q    = `SELECT stagedata FROM %s WHERE fingerprint = ? AND stage = ? LIMIT 1`
	)

	q := fmt.Sprintf(Q, vv.ARTIFACTTABLE)
	var blob []byte
	err := SQLStore.QueryRowContext(context.Background(), q, fp, stage).Scan(&blob)
	if err != nil {
		return err
	}

	if len(blob) == 0 {
		Msg.NOTE(fmt.Sprintf(MSG2, fp, stage))
	}

	// the data in the table is zipped and needs unzipping
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return err
	}
	decompr, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	err = zr.Close()
	if err != nil {
		return err
	}

	return json.Unmarshal(decompr, payload)
}

// ArtifactReset - drop the artifact and diagnostics tables
func ArtifactReset() {
	const (
		MSG1 = "ArtifactReset() dropped "
		MSG2 = "ArtifactReset(): 'DROP TABLE %s' returned an (ignored) error: \n\t%s"
		E    = `DROP TABLE %s`
	)

	for _, t := range []string{vv.ARTIFACTTABLE, vv.DIAGTABLE} {
		ex := fmt.Sprintf(E, t)
		_, err := SQLStore.ExecContext(context.Background(), ex)
		if err != nil {
			Msg.TMI(fmt.Sprintf(MSG2, t, err.Error()))
		} else {
			Msg.NOTE(MSG1 + t)
		}
	}
}

// ArtifactSize - how much space are the stored snapshots using?
func ArtifactSize(priority int) {
	const (
		SZQ  = "SELECT COALESCE(SUM(datasize), 0) AS total FROM " + vv.ARTIFACTTABLE
		MSG4 = "Disk space used by stored artifacts is currently %dKB"
	)

	var size int64
	err := SQLStore.QueryRowContext(context.Background(), SZQ).Scan(&size)
	Msg.EC(err)
	Msg.Emit(fmt.Sprintf(MSG4, size/1024), priority)
}

// ArtifactCount - how many snapshots have been stored?
func ArtifactCount(priority int) {
	const (
		SZQ  = "SELECT COUNT(*) AS total FROM " + vv.ARTIFACTTABLE
		MSG4 = "Number of stored pipeline artifacts: %d"
		DNE  = "no such table"
	)

	var count int64
	err := SQLStore.QueryRowContext(context.Background(), SZQ).Scan(&count)
	if err != nil {
		if strings.Contains(err.Error(), DNE) {
			ArtifactDBInit()
		}
		count = 0
	}
	Msg.Emit(fmt.Sprintf(MSG4, count), priority)
}
