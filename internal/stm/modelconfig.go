//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stm

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// LDAConfig - the model knobs; these live in a JSON file, not in flags
type LDAConfig struct {
	LDAIterations  int
	LDAXformPasses int
	BurnInPasses   int
	ChangeEvalFrq  int
	PerplexEvalFrq int
	PerplexTol     float64
	KGrid          []int
	ChosenK        int
	Seed           uint64
}

var DefaultLDAModel = LDAConfig{
	LDAIterations:  vv.LDAITER,
	LDAXformPasses: vv.LDAXFORMPASSES,
	BurnInPasses:   vv.LDABURNINPASSES,
	ChangeEvalFrq:  vv.LDACHGEVALFRQ,
	PerplexEvalFrq: vv.LDAPERPEVALFRQ,
	PerplexTol:     vv.LDAPERPTOL,
	KGrid:          vv.TheKGrid,
	ChosenK:        vv.DEFAULTCHOSENK,
	Seed:           vv.DEFAULTSEED,
}

// ModelConfig - read the vv.CONFIGMODEL file and return an LDAConfig; if it does not exist, generate it
func ModelConfig() LDAConfig {
	const (
		ERR1 = "ModelConfig() cannot find UserHomeDir"
		ERR2 = "ModelConfig() failed to parse "
		MSG1 = "wrote default model configuration file "
	)

	cfg := DefaultLDAModel

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return cfg
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGMODEL)

	if yes != nil {
		content, err := json.MarshalIndent(cfg, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGMODEL, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGMODEL)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGMODEL)
		decoderc := json.NewDecoder(loadedcfg)
		mc := LDAConfig{}
		errc := decoderc.Decode(&mc)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGMODEL)
			mc = cfg
		}
		cfg = mc
	}

	// a hand-edited file can leave holes; zero means "use the shipped value"

	if cfg.LDAIterations == 0 {
		cfg.LDAIterations = vv.LDAITER
	}
	if cfg.LDAXformPasses == 0 {
		cfg.LDAXformPasses = vv.LDAXFORMPASSES
	}
	if cfg.BurnInPasses == 0 {
		cfg.BurnInPasses = vv.LDABURNINPASSES
	}
	if cfg.ChangeEvalFrq == 0 {
		cfg.ChangeEvalFrq = vv.LDACHGEVALFRQ
	}
	if cfg.PerplexEvalFrq == 0 {
		cfg.PerplexEvalFrq = vv.LDAPERPEVALFRQ
	}
	if cfg.PerplexTol == 0 {
		cfg.PerplexTol = vv.LDAPERPTOL
	}
	if len(cfg.KGrid) == 0 {
		cfg.KGrid = vv.TheKGrid
	}
	if cfg.ChosenK == 0 {
		cfg.ChosenK = vv.DEFAULTCHOSENK
	}
	if cfg.Seed == 0 {
		cfg.Seed = vv.DEFAULTSEED
	}

	return cfg
}
