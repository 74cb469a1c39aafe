//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import (
	"time"
)

var (
	LaunchTime = time.Now()

	// month offsets count from the start of the study window
	TheEpoch = time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
)
