//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	ArtifactDB    string // sqlite file that accumulates every stored run
	BlackAndWhite bool
	Input         string // the survey export to process
	LogLevel      int
	ManualGC      bool // see MessageMaker.MemStats()
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	ResetStore    bool
	SelfDestruct  bool
	SelfTest      int
	TickerActive  bool
	WorkerCount   int
}
