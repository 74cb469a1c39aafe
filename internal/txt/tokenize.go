//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

const (
	// dropped outright so "don't" yields "dont" and not "don" + "t"
	APOSTROPHES = "'`’‘"
)

// anything that is not a letter or a digit splits the token stream
var notaword = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize - explode each response into lowercased word tokens, one row per
// surviving token; stopwords and digit-bearing tokens never make it out
func Tokenize(obs []str.Observation, stops map[string]struct{}) []str.TokenRow {
	const (
		MSG1 = "Tokenize() made %d token rows from %d responses"
	)

	var rows []str.TokenRow
	for i := range obs {
		lc := strings.ToLower(obs[i].Response)
		lc = gen.Purgechars(APOSTROPHES, lc)
		ww := strings.Fields(notaword.ReplaceAllString(lc, " "))
		for j := 0; j < len(ww); j++ {
			if _, s := stops[ww[j]]; s {
				continue
			}
			if gen.HasDigit(ww[j]) {
				continue
			}
			rows = append(rows, str.TokenRow{ObsID: obs[i].ObsID, Term: ww[j]})
		}
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(rows), len(obs)))

	return rows
}

// PruneRare - two passes over the exploded table: count every term
// corpus-wide, then drop all instances of any term at or under the floor
func PruneRare(rows []str.TokenRow) []str.TokenRow {
	const (
		MSG1 = "PruneRare() dropped %d of %d terms; %d token rows remain"
	)

	// [a] global counts
	seen := make(map[string]int)
	for i := range rows {
		seen[rows[i].Term]++
	}

	// [b] rebuild without the losers; input order is preserved
	var kept []str.TokenRow
	for i := range rows {
		if seen[rows[i].Term] > vv.TERMFLOORCOUNT {
			kept = append(kept, rows[i])
		}
	}

	lost := 0
	for t := range seen {
		if seen[t] <= vv.TERMFLOORCOUNT {
			lost++
		}
	}

	Msg.PEEK(fmt.Sprintf(MSG1, lost, len(seen), len(kept)))

	return kept
}
