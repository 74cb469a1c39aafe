//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package svy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

// Recode - turn the selected table into typed observations: semantic names, race,
// month offsets, per-caregiver sequence numbers, and the carried-forward answers
func Recode(t *str.SurveyTable) ([]str.Observation, error) {
	const (
		ERR1 = "Recode() cannot parse timestamp '%s' at data row %d: %w"
		MSG1 = "Recode() produced %d observations for %d caregivers"
		MSG2 = "Recode() saw %d rows with no race indicator set"
	)

	obs := make([]str.Observation, len(t.Rows))

	// [a] typed fields, renames, the race ladder, and the month offset

	norace := 0
	for i := range t.Rows {
		o := str.Observation{
			CaregiverID: t.Val(i, vv.COLID),
			Language:    t.Val(i, vv.COLLANG),
			Response:    t.Val(i, vv.COLTEXT),
			Poverty:     tofloat(t.Val(i, vv.COLPOV)),
		}

		w, e := time.Parse(vv.TIMELAYOUT, t.Val(i, vv.COLWHEN))
		if e != nil {
			return nil, fmt.Errorf(ERR1, t.Val(i, vv.COLWHEN), i+1, e)
		}
		o.Submitted = w
		o.Month = FloorMonths(vv.TheEpoch, w)

		for _, rung := range vv.TheRaceLadder {
			if isset(t.Val(i, rung[0])) {
				o.Race = rung[1]
				break
			}
		}
		if o.Race == "" {
			norace += 1
		}

		for raw, sem := range vv.TheRenames {
			if raw == vv.COLPOV || raw == vv.COLTEXT {
				continue
			}
			o.SetItem(sem, tofloat(t.Val(i, raw)))
		}

		obs[i] = o
	}

	// [b] chronological rank within each caregiver; ties keep input order

	perc := make(map[string][]int)
	for i := range obs {
		perc[obs[i].CaregiverID] = append(perc[obs[i].CaregiverID], i)
	}

	for _, idx := range perc {
		sort.SliceStable(idx, func(i, j int) bool {
			return obs[idx[i]].Submitted.Before(obs[idx[j]].Submitted)
		})
		for rank, i := range idx {
			obs[i].Seq = rank + 1
			obs[i].ObsID = obs[i].CaregiverID + vv.OBSJOINER + strconv.Itoa(rank+1)
		}
	}

	// [c] race and poverty were asked once; every wave gets the answer

	carryforward(obs, perc)

	if norace > 0 {
		Msg.TMI(fmt.Sprintf(MSG2, norace))
	}
	Msg.PEEK(fmt.Sprintf(MSG1, len(obs), len(perc)))

	return obs, nil
}

// carryforward - propagate race and poverty to every row of a caregiver, earliest answer first
func carryforward(obs []str.Observation, perc map[string][]int) {
	for _, idx := range perc {
		race := ""
		var pov *float64
		for _, i := range idx {
			if race == "" && obs[i].Race != "" {
				race = obs[i].Race
			}
			if pov == nil && obs[i].Poverty != nil {
				pov = obs[i].Poverty
			}
		}
		for _, i := range idx {
			if obs[i].Race == "" {
				obs[i].Race = race
			}
			if obs[i].Poverty == nil {
				obs[i].Poverty = pov
			}
		}
	}
}

// FloorMonths - whole calendar months between a and b; negative when b precedes a
func FloorMonths(a time.Time, b time.Time) int {
	m := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		m -= 1
	}
	return m
}

// tofloat - empty and unparseable cells are missing, never zero
func tofloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return nil
	}
	return gen.Ptr(v)
}

// isset - an indicator column counts as marked when it holds a positive number
func isset(s string) bool {
	v := tofloat(s)
	return v != nil && *v > 0
}
