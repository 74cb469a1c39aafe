//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"fmt"
	"strings"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	// "\r\n" has to come first or it will turn into two spaces
	unbreaker = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
)

// Scrub - flatten linebreaks, then drop rows that have nothing to model:
// placeholder answers, blank answers, the wrong language, or no composites
func Scrub(obs []str.Observation) []str.Observation {
	const (
		MSG1 = "Scrub() kept %d of %d responses (placeholder: %d, blank: %d, language: %d, composites: %d)"
	)

	placeholders := gen.ToSet(vv.ThePlaceholders)

	var kept []str.Observation
	var nplac, nblank, nlang, ncomp int

	for i := range obs {
		o := obs[i]

		// [a] embedded linebreaks become single spaces
		o.Response = strings.TrimSpace(unbreaker.Replace(o.Response))

		// [b] verbatim placeholder answers; exact match, so "n/arriving late" is safe
		if _, skip := placeholders[o.Response]; skip {
			nplac++
			continue
		}

		// [c] nothing left to read
		if o.Response == "" {
			nblank++
			continue
		}

		// [d] the models only speak one language
		if o.Language != vv.ANALYSISLANG {
			nlang++
			continue
		}

		// [e] rows without both composites can not sit in the prevalence design
		if o.ParentWB == nil || o.ChildWB == nil {
			ncomp++
			continue
		}

		kept = append(kept, o)
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(kept), len(obs), nplac, nblank, nlang, ncomp))

	return kept
}
