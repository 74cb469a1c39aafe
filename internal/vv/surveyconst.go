//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	// raw export column codes

	COLID   = "id"
	COLLANG = "lang"
	COLWHEN = "endtime"
	COLPOV  = "belowpov"
	COLTEXT = "open_end"

	ANALYSISLANG = "en"
	TIMELAYOUT   = "2006-01-02 15:04:05" // the export writes naive local timestamps

	OBSJOINER = "_"

	TERMFLOORCOUNT = 20 // a term must be seen more often than this corpus-wide to survive pruning
)

// the loader refuses to run without every one of these columns

var TheColumns = []string{
	COLID, COLLANG, COLWHEN,
	"race_1", "race_2", "race_3",
	COLPOV,
	"q1a", "q1b", "q1c",
	"q2a", "q2b", "q2c",
	"q3a", "q3b",
	"q4a", "q4b",
	"q5a", "q5b",
	"q6a", "q6b",
	COLTEXT,
}

// raw item codes to semantic names; the codebook in go-ish form

var TheRenames = map[string]string{
	"q1a":      "anx_nervous",
	"q1b":      "anx_worry",
	"q1c":      "anx_edge",
	"q2a":      "dep_down",
	"q2b":      "dep_interest",
	"q2c":      "dep_hopeless",
	"q3a":      "str_overwhelmed",
	"q3b":      "str_cope",
	"q4a":      "lone_isolated",
	"q4b":      "lone_leftout",
	"q5a":      "fuss_fussy",
	"q5b":      "fuss_soothe",
	"q6a":      "fear_startles",
	"q6b":      "fear_clingy",
	"belowpov": "poverty",
	"open_end": "response",
}

// first match wins; a caregiver with multiple indicators set keeps the earliest label

var TheRaceLadder = [][2]string{
	{"race_1", "Black"},
	{"race_2", "White"},
	{"race_3", "Other"},
}

// construct names to their (semantic) item names

var TheConstructs = map[string][]string{
	"anxiety":     {"anx_nervous", "anx_worry", "anx_edge"},
	"depression":  {"dep_down", "dep_interest", "dep_hopeless"},
	"stress":      {"str_overwhelmed", "str_cope"},
	"loneliness":  {"lone_isolated", "lone_leftout"},
	"fussiness":   {"fuss_fussy", "fuss_soothe"},
	"fearfulness": {"fear_startles", "fear_clingy"},
}

var (
	ParentConstructs = []string{"anxiety", "depression", "stress", "loneliness"}
	ChildConstructs  = []string{"fussiness", "fearfulness"}
)

// exact matches only: "n/a." goes, "n/arriving late" stays

var ThePlaceholders = []string{
	"N/A", "N/a", "n/a", "n/a.", "NA", "Na", "na",
	"None", "none", "NONE", "None.",
	"No", "no", "NO", "No.", "no.",
	"Nope", "nope",
	"Nothing", "nothing", "Nothing.",
	"-", "--", ".", "..", "...",
}
