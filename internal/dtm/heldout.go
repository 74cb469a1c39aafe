//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/e-gun/sparse"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// Split - withhold counts for later evaluation: pick a seeded subset of the
// documents, then mask half of each one's nonzero cells. The training copy has
// those cells zeroed; the originals ride along as (doc, term, count) triples.
// At least one cell always stays unmasked so no document goes dark.
func Split(m *str.DocTermMatrix, seed uint64) *str.HeldoutSplit {
	const (
		MSG1 = "Split() masked %d cells across %d of %d documents [seed %d]"
	)

	docs, terms := m.Counts.Dims()
	rng := rand.New(rand.NewSource(seed))

	// [a] cells per document, in stored order

	cells := make([][]str.MaskedCell, docs)
	m.Counts.DoNonZero(func(i int, j int, v float64) {
		cells[i] = append(cells[i], str.MaskedCell{Doc: i, Term: j, Count: v})
	})

	// [b] choose the documents

	nsel := int(float64(docs) * vv.HELDOUTDOCSHARE)
	if nsel < 1 {
		nsel = 1
	}
	if nsel > docs {
		nsel = docs
	}

	chosen := rng.Perm(docs)[:nsel]
	sort.Ints(chosen)

	// [c] choose the cells within each document

	var missing []str.MaskedCell
	masked := make(map[[2]int]bool)
	for _, d := range chosen {
		cc := cells[d]
		nmask := int(float64(len(cc)) * vv.HELDOUTCELLSHARE)
		if nmask > len(cc)-1 {
			nmask = len(cc) - 1
		}
		if nmask < 1 {
			continue
		}
		pick := rng.Perm(len(cc))[:nmask]
		sort.Ints(pick)
		for _, p := range pick {
			missing = append(missing, cc[p])
			masked[[2]int{cc[p].Doc, cc[p].Term}] = true
		}
	}

	// [d] rebuild the training counts without the masked cells

	dok := sparse.NewDOK(docs, terms)
	m.Counts.DoNonZero(func(i int, j int, v float64) {
		if !masked[[2]int{i, j}] {
			dok.Set(i, j, v)
		}
	})

	train := &str.DocTermMatrix{
		RowIDs:  append([]string(nil), m.RowIDs...),
		Terms:   append([]string(nil), m.Terms...),
		RowIdx:  make(map[string]int, len(m.RowIdx)),
		TermIdx: make(map[string]int, len(m.TermIdx)),
		Counts:  dok.ToCSR(),
	}
	for k, v := range m.RowIdx {
		train.RowIdx[k] = v
	}
	for k, v := range m.TermIdx {
		train.TermIdx[k] = v
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(missing), len(chosen), docs, seed))

	return &str.HeldoutSplit{Train: train, Missing: missing, Seed: seed}
}
