//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package txt

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/vv"
)

//
// STOPWORDS
//

var (
	// English127 - the snowball stop list
	English127 = []string{"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its",
		"itself", "they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this", "that",
		"these", "those", "am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "having",
		"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
		"of", "at", "by", "for", "with", "about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
		"further", "then", "once", "here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "s", "t", "can", "will", "just", "don", "should", "now"}
	// EngExtra - contraction leftovers (the tokenizer eats apostrophes) and survey filler
	EngExtra = []string{"im", "ive", "id", "ill", "youd", "youve", "youll", "youre", "hed", "hes", "shed", "shes",
		"itd", "wed", "weve", "theyd", "theyve", "theyre", "dont", "doesnt", "didnt", "cant", "cannot", "couldnt",
		"wont", "wouldnt", "shouldnt", "isnt", "arent", "wasnt", "werent", "havent", "hasnt", "hadnt", "mustnt",
		"thats", "theres", "heres", "wheres", "whats", "whos", "lets", "gonna", "gotta", "kinda", "um", "uh", "ok",
		"okay", "yes", "yeah", "nah", "etc", "also", "even", "really", "still", "much", "lot", "lots", "get",
		"gets", "got", "getting", "go", "going", "went", "thing", "things", "way", "bit", "able", "us"}
	EngStop = append(English127, EngExtra...)
	// EnglishKeep - members of EngStop we will not toss; both carry mood sense in these answers
	EnglishKeep = []string{"down", "ill"}
)

func getenglishstops() map[string]struct{} {
	es := gen.SetSubtraction(EngStop, EnglishKeep)
	return gen.ToSet(es)
}

// DefaultEnglishStops - the stop list as shipped, keep list already subtracted, sorted
func DefaultEnglishStops() []string {
	stops := gen.StringMapKeysIntoSlice(getenglishstops())
	sort.Strings(stops)
	return stops
}

// readstopconfig - read the vv.CONFIGSTOPS file and return []stopwords; if it does not exist, generate it
func readstopconfig() []string {
	const (
		ERR1 = "readstopconfig() cannot find UserHomeDir"
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stopword configuration file: "
	)

	stops := DefaultEnglishStops()

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return stops
	}

	_, yes := os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS)

	if yes != nil {
		content, err := json.MarshalIndent(stops, vv.JSONINDENT, vv.JSONINDENT)
		Msg.EC(err)

		err = os.WriteFile(fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGSTOPS, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + vv.CONFIGSTOPS)
	} else {
		loadedcfg, _ := os.Open(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGSTOPS)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + vv.CONFIGSTOPS)
		} else {
			stops = stp
		}
	}
	return stops
}

// StopSet - the working stopword set: the config file's words, or the defaults on a first run
func StopSet() map[string]struct{} {
	return gen.ToSet(readstopconfig())
}
