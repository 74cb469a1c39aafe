//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package pipe

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/stm"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

const (
	SELFTESTCSV  = "emb/selftest-survey.csv"
	SELFTESTFILE = "stg-selftest-survey.csv"
)

//go:embed emb
var efs embed.FS

// SelfTestCorpus - the canned survey export that ships inside the binary; it is
// small but it covers every drop rule: placeholder answers, the wrong language,
// rows without items, terms under the floor, and caregivers with repeat waves
func SelfTestCorpus() []byte {
	b, e := efs.ReadFile(SELFTESTCSV)
	Msg.EC(e)
	return b
}

// SelfTestConfig - fixed small knobs; the canned corpus only supports a few topics,
// and the point is to exercise the stages, not to model anything
func SelfTestConfig() stm.LDAConfig {
	return stm.LDAConfig{
		LDAIterations:  100,
		LDAXformPasses: 60,
		BurnInPasses:   1,
		ChangeEvalFrq:  5,
		PerplexEvalFrq: 5,
		PerplexTol:     vv.LDAPERPTOL,
		KGrid:          []int{2, 3, 4},
		ChosenK:        3,
		Seed:           vv.DEFAULTSEED,
	}
}

// RunSelfTest - write the canned export to disk and drive every stage over it;
// a second pass will replay from the artifact store instead of refitting
func RunSelfTest() *str.TopicModel {
	const (
		MSG1 = "entering selftest mode (5 stages)"
		MSG2 = "exiting selftest mode"
	)

	Msg.MAND(MSG1)

	p := filepath.Join(os.TempDir(), SELFTESTFILE)
	err := os.WriteFile(p, SelfTestCorpus(), vv.WRITEPERMS)
	Msg.EC(err)

	tm := RunPipeline(p, SelfTestConfig(), lnch.Config.WorkerCount)
	TopicReport(tm)
	PrevalenceReport(tm)

	Msg.MAND(MSG2)

	return tm
}
