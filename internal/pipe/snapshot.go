//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"github.com/e-gun/sparse"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
)

// matrixsnapshot - the matrix stage in a shape json can hold; the sparse
// counts go in and out as nonzero triples
type matrixsnapshot struct {
	RowIDs  []string
	Terms   []string
	Cells   []str.MaskedCell
	Missing []str.MaskedCell
	Seed    uint64
	Kept    []str.Observation
}

// snapshotmatrix - flatten the matrix, the kept metadata, and the split
func snapshotmatrix(m *str.DocTermMatrix, kept []str.Observation, h *str.HeldoutSplit) matrixsnapshot {
	var cells []str.MaskedCell
	m.Counts.DoNonZero(func(i int, j int, v float64) {
		cells = append(cells, str.MaskedCell{Doc: i, Term: j, Count: v})
	})

	return matrixsnapshot{
		RowIDs:  m.RowIDs,
		Terms:   m.Terms,
		Cells:   cells,
		Missing: h.Missing,
		Seed:    h.Seed,
		Kept:    kept,
	}
}

// rebuild - reinflate what snapshotmatrix flattened
func (s *matrixsnapshot) rebuild() (*str.DocTermMatrix, []str.Observation, *str.HeldoutSplit) {
	full := s.inflate(nil)

	masked := make(map[[2]int]bool, len(s.Missing))
	for _, c := range s.Missing {
		masked[[2]int{c.Doc, c.Term}] = true
	}
	train := s.inflate(masked)

	h := &str.HeldoutSplit{Train: train, Missing: s.Missing, Seed: s.Seed}
	return full, s.Kept, h
}

// inflate - cells back into a matrix, minus any masked positions
func (s *matrixsnapshot) inflate(masked map[[2]int]bool) *str.DocTermMatrix {
	rowidx := make(map[string]int, len(s.RowIDs))
	for i, id := range s.RowIDs {
		rowidx[id] = i
	}
	termidx := make(map[string]int, len(s.Terms))
	for j, t := range s.Terms {
		termidx[t] = j
	}

	dok := sparse.NewDOK(len(s.RowIDs), len(s.Terms))
	for _, c := range s.Cells {
		if masked[[2]int{c.Doc, c.Term}] {
			continue
		}
		dok.Set(c.Doc, c.Term, c.Count)
	}

	return &str.DocTermMatrix{
		RowIDs:  s.RowIDs,
		Terms:   s.Terms,
		RowIdx:  rowidx,
		TermIdx: termidx,
		Counts:  dok.ToCSR(),
	}
}
