//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "time"

// SurveyTable - the raw export after column selection; values are untyped strings
type SurveyTable struct {
	Source string
	Header []string
	Cols   map[string]int
	Rows   [][]string
}

// Val - fetch a cell by row number and column name; "" if the cell is absent
func (t *SurveyTable) Val(r int, col string) string {
	c, ok := t.Cols[col]
	if !ok || r >= len(t.Rows) || c >= len(t.Rows[r]) {
		return ""
	}
	return t.Rows[r][c]
}

// Observation - one caregiver response after recoding; nil means the value was never reported
type Observation struct {
	CaregiverID string
	Language    string
	Submitted   time.Time
	Race        string // "Black", "White", "Other", or "" when no indicator was ever set
	Poverty     *float64
	Month       int // whole months since the epoch; negative is legitimate
	Seq         int // 1-based chronological rank within the caregiver
	ObsID       string
	Response    string

	AnxNervous     *float64
	AnxWorry       *float64
	AnxEdge        *float64
	DepDown        *float64
	DepInterest    *float64
	DepHopeless    *float64
	StrOverwhelmed *float64
	StrCope        *float64
	LoneIsolated   *float64
	LoneLeftout    *float64
	FussFussy      *float64
	FussSoothe     *float64
	FearStartles   *float64
	FearClingy     *float64

	Anxiety     *float64
	Depression  *float64
	Stress      *float64
	Loneliness  *float64
	Fussiness   *float64
	Fearfulness *float64

	ZAnxiety     *float64
	ZDepression  *float64
	ZStress      *float64
	ZLoneliness  *float64
	ZFussiness   *float64
	ZFearfulness *float64

	ParentWB *float64
	ChildWB  *float64
}

// Item - fetch a scale item by its semantic name
func (o *Observation) Item(name string) *float64 {
	switch name {
	case "anx_nervous":
		return o.AnxNervous
	case "anx_worry":
		return o.AnxWorry
	case "anx_edge":
		return o.AnxEdge
	case "dep_down":
		return o.DepDown
	case "dep_interest":
		return o.DepInterest
	case "dep_hopeless":
		return o.DepHopeless
	case "str_overwhelmed":
		return o.StrOverwhelmed
	case "str_cope":
		return o.StrCope
	case "lone_isolated":
		return o.LoneIsolated
	case "lone_leftout":
		return o.LoneLeftout
	case "fuss_fussy":
		return o.FussFussy
	case "fuss_soothe":
		return o.FussSoothe
	case "fear_startles":
		return o.FearStartles
	case "fear_clingy":
		return o.FearClingy
	default:
		return nil
	}
}

// SetItem - store a scale item by its semantic name
func (o *Observation) SetItem(name string, v *float64) {
	switch name {
	case "anx_nervous":
		o.AnxNervous = v
	case "anx_worry":
		o.AnxWorry = v
	case "anx_edge":
		o.AnxEdge = v
	case "dep_down":
		o.DepDown = v
	case "dep_interest":
		o.DepInterest = v
	case "dep_hopeless":
		o.DepHopeless = v
	case "str_overwhelmed":
		o.StrOverwhelmed = v
	case "str_cope":
		o.StrCope = v
	case "lone_isolated":
		o.LoneIsolated = v
	case "lone_leftout":
		o.LoneLeftout = v
	case "fuss_fussy":
		o.FussFussy = v
	case "fuss_soothe":
		o.FussSoothe = v
	case "fear_startles":
		o.FearStartles = v
	case "fear_clingy":
		o.FearClingy = v
	}
}

// Construct - fetch a construct mean by name
func (o *Observation) Construct(name string) *float64 {
	switch name {
	case "anxiety":
		return o.Anxiety
	case "depression":
		return o.Depression
	case "stress":
		return o.Stress
	case "loneliness":
		return o.Loneliness
	case "fussiness":
		return o.Fussiness
	case "fearfulness":
		return o.Fearfulness
	default:
		return nil
	}
}

// SetConstruct - store a construct mean by name
func (o *Observation) SetConstruct(name string, v *float64) {
	switch name {
	case "anxiety":
		o.Anxiety = v
	case "depression":
		o.Depression = v
	case "stress":
		o.Stress = v
	case "loneliness":
		o.Loneliness = v
	case "fussiness":
		o.Fussiness = v
	case "fearfulness":
		o.Fearfulness = v
	}
}

// Z - fetch a standardized construct score by name
func (o *Observation) Z(name string) *float64 {
	switch name {
	case "anxiety":
		return o.ZAnxiety
	case "depression":
		return o.ZDepression
	case "stress":
		return o.ZStress
	case "loneliness":
		return o.ZLoneliness
	case "fussiness":
		return o.ZFussiness
	case "fearfulness":
		return o.ZFearfulness
	default:
		return nil
	}
}

// SetZ - store a standardized construct score by name
func (o *Observation) SetZ(name string, v *float64) {
	switch name {
	case "anxiety":
		o.ZAnxiety = v
	case "depression":
		o.ZDepression = v
	case "stress":
		o.ZStress = v
	case "loneliness":
		o.ZLoneliness = v
	case "fussiness":
		o.ZFussiness = v
	case "fearfulness":
		o.ZFearfulness = v
	}
}
