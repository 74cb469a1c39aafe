//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "SurveyTopicsGo"
	SHORTNAME = "STG"
	VERSION   = "1.0.0"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "stg-conf.json"
	CONFIGPROLIX   = "stg-prolix-conf.json"
	CONFIGMODEL    = "stg-model-conf-lda.json"
	CONFIGSTOPS    = "stg-stops-english.json"

	DBFILENAME          = "stg-artifacts.sqlite"
	DEFAULTGOLOGLEVEL   = 0
	DEFAULTSURVEYEXPORT = "survey-export.csv"
	JSONINDENT          = "  "
	WRITEPERMS          = 0644
)
