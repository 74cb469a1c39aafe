package txt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-gun/SurveyTopicsGo/internal/gen"
	"github.com/e-gun/SurveyTopicsGo/internal/str"
	"github.com/e-gun/SurveyTopicsGo/internal/txt"
)

// an observation that survives every filter unless the test breaks something
func keepable(id string, response string) str.Observation {
	return str.Observation{
		ObsID:    id,
		Language: "en",
		Response: response,
		ParentWB: gen.Ptr(0.5),
		ChildWB:  gen.Ptr(-0.5),
	}
}

func TestScrubPlaceholders(t *testing.T) {
	gone := []string{"n/a.", "N/A", "None.", "no", "Nope", "...", "-"}
	for _, p := range gone {
		t.Run(p, func(t *testing.T) {
			out := txt.Scrub([]str.Observation{keepable("x_1", p)})
			assert.Empty(t, out)
		})
	}

	// only exact matches go
	out := txt.Scrub([]str.Observation{keepable("x_1", "n/arriving late")})
	require.Len(t, out, 1)
	assert.Equal(t, "n/arriving late", out[0].Response)
}

func TestScrubLinebreaksAndBlanks(t *testing.T) {
	obs := []str.Observation{
		keepable("a_1", "first line\r\nsecond line"),
		keepable("a_2", "tabs\nand\rmore"),
		keepable("a_3", " \r\n \n "),
		keepable("a_4", "  padded  "),
		keepable("a_5", ""),
	}

	out := txt.Scrub(obs)

	require.Len(t, out, 3)
	assert.Equal(t, "first line second line", out[0].Response)
	assert.Equal(t, "tabs and more", out[1].Response)
	assert.Equal(t, "padded", out[2].Response)
}

func TestScrubLanguageAndComposites(t *testing.T) {
	wronglang := keepable("b_1", "una respuesta")
	wronglang.Language = "es"

	noparent := keepable("b_2", "tired all the time")
	noparent.ParentWB = nil

	nochild := keepable("b_3", "baby cries at night")
	nochild.ChildWB = nil

	obs := []str.Observation{wronglang, noparent, nochild, keepable("b_4", "we are ok")}

	out := txt.Scrub(obs)

	require.Len(t, out, 1)
	assert.Equal(t, "b_4", out[0].ObsID)
}
