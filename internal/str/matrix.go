package str

import (
	"github.com/e-gun/sparse"
)

// TokenRow - one surviving token from one response
type TokenRow struct {
	ObsID string
	Term  string
}

// DocTermMatrix - sparse counts; rows are observations, columns are vocabulary terms
type DocTermMatrix struct {
	RowIDs  []string
	Terms   []string
	RowIdx  map[string]int
	TermIdx map[string]int
	Counts  *sparse.CSR
}

func (m *DocTermMatrix) Dims() (int, int) {
	if m.Counts == nil {
		return 0, 0
	}
	return m.Counts.Dims()
}

func (m *DocTermMatrix) NNZ() int {
	if m.Counts == nil {
		return 0
	}
	return m.Counts.NNZ()
}

// TermDocs - the transposed counts; the fitter wants terms as rows and documents as columns
func (m *DocTermMatrix) TermDocs() *sparse.CSR {
	d, t := m.Counts.Dims()
	dok := sparse.NewDOK(t, d)
	m.Counts.DoNonZero(func(i, j int, v float64) {
		dok.Set(j, i, v)
	})
	return dok.ToCSR()
}

// Clone - deep copy; masking must not touch the original counts
func (m *DocTermMatrix) Clone() *DocTermMatrix {
	d, t := m.Counts.Dims()
	dok := sparse.NewDOK(d, t)
	m.Counts.DoNonZero(func(i, j int, v float64) {
		dok.Set(i, j, v)
	})
	cl := &DocTermMatrix{
		RowIDs:  append([]string(nil), m.RowIDs...),
		Terms:   append([]string(nil), m.Terms...),
		RowIdx:  make(map[string]int, len(m.RowIdx)),
		TermIdx: make(map[string]int, len(m.TermIdx)),
		Counts:  dok.ToCSR(),
	}
	for k, v := range m.RowIdx {
		cl.RowIdx[k] = v
	}
	for k, v := range m.TermIdx {
		cl.TermIdx[k] = v
	}
	return cl
}

// MaskedCell - one count withheld from training
type MaskedCell struct {
	Doc   int
	Term  int
	Count float64
}

// HeldoutSplit - a training copy with its masked cells on the side
type HeldoutSplit struct {
	Train   *DocTermMatrix
	Missing []MaskedCell
	Seed    uint64
}
