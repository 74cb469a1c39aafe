//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/e-gun/SurveyTopicsGo/internal/db"
	"github.com/e-gun/SurveyTopicsGo/internal/dtm"
	"github.com/e-gun/SurveyTopicsGo/internal/lnch"
	"github.com/e-gun/SurveyTopicsGo/internal/mm"
	"github.com/e-gun/SurveyTopicsGo/internal/pipe"
	"github.com/e-gun/SurveyTopicsGo/internal/stm"
	"github.com/e-gun/SurveyTopicsGo/internal/svy"
	"github.com/e-gun/SurveyTopicsGo/internal/txt"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// these next variables should be injected at build time:
// 'go build -ldflags "-X main.GitCommit=$GIT_COMMIT"', etc

var (
	GitCommit string
	VersSuppl string
	BuildDate string
	PGOInfo   string

	Msg = lnch.NewMessageMakerWithDefaults()
)

func main() {
	const (
		MSG1 = "Running Selftest %d of %d"
		MSG2 = "all work complete"
	)

	// [a] launch configuration; flags override the config files

	lnch.GitCommit = GitCommit
	lnch.VersSuppl = VersSuppl
	lnch.BuildDate = BuildDate
	lnch.PGOInfo = PGOInfo

	lnch.LookForConfigFile()
	lnch.ConfigAtLaunch()
	messagemakers()

	lnch.PrintVersion(*lnch.Config)
	lnch.PrintBuildInfo(*lnch.Config)
	if !lnch.Config.QuietStart {
		fmt.Printf(vv.TERMINALTEXT+"\n\n", vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL)
	}

	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	} else if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	// [b] "-00" wants the store gone, not opened

	if lnch.Config.SelfDestruct {
		db.SelfDestruct(lnch.Config.ArtifactDB)
		os.Exit(0)
	}

	db.OpenArtifactDB(lnch.Config.ArtifactDB)

	if lnch.Config.ResetStore {
		db.ArtifactReset()
	}

	// [c] the work itself

	start := time.Now()

	if lnch.Config.SelfTest > 0 {
		for i := 0; i < lnch.Config.SelfTest; i++ {
			Msg.MAND(fmt.Sprintf(MSG1, i+1, lnch.Config.SelfTest))
			pipe.RunSelfTest()
		}
	} else {
		pipe.Run()
	}

	// [d] exit report

	Msg.Timer("Σ", MSG2, start, start)
	db.ArtifactCount(mm.MSGNOTE)
	db.ArtifactSize(mm.MSGNOTE)
	Msg.MemStats("main()")
}

// messagemakers - push the as-launched configuration into every package that talks
func messagemakers() {
	makers := []*mm.MessageMaker{Msg, db.Msg, dtm.Msg, pipe.Msg, stm.Msg, svy.Msg, txt.Msg}
	for i := range makers {
		lnch.UpdateMessageMakerWithConfig(makers[i])
	}
}
