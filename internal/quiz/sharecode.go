package quiz

import (
	"net/url"
	"strconv"

	"theinsight/internal/model"
)

// ShareState is the minimum state a shared result link carries
type ShareState struct {
	Tally  model.ScoreTally
	Age    model.AgeGroup
	Gender model.Gender
}

// Encode serializes a result into URL query parameters. The gender
// parameter is omitted when unset.
func Encode(state ShareState) url.Values {
	v := url.Values{}
	v.Set("view", "result")
	v.Set("d", strconv.Itoa(state.Tally.D))
	v.Set("i", strconv.Itoa(state.Tally.I))
	v.Set("s", strconv.Itoa(state.Tally.S))
	v.Set("c", strconv.Itoa(state.Tally.C))
	v.Set("age", string(state.Age))
	if state.Gender != "" {
		v.Set("gender", string(state.Gender))
	}
	return v
}

// Decode reconstructs a result view from query parameters. The shortcut
// requires view=result plus all four counts and an age tag; a missing
// required field returns ok=false. Non-numeric counts default to 0 rather
// than aborting the decode. An absent gender decodes to GenderOther.
func Decode(v url.Values) (ShareState, bool) {
	if v.Get("view") != "result" {
		return ShareState{}, false
	}
	for _, key := range []string{"d", "i", "s", "c"} {
		if !v.Has(key) {
			return ShareState{}, false
		}
	}
	age := model.AgeGroup(v.Get("age"))
	if !age.IsValid() {
		return ShareState{}, false
	}

	atoi := func(key string) int {
		n, err := strconv.Atoi(v.Get(key))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}

	state := ShareState{
		Tally: model.ScoreTally{
			D: atoi("d"),
			I: atoi("i"),
			S: atoi("s"),
			C: atoi("c"),
		},
		Age:    age,
		Gender: model.GenderOther,
	}
	if g := model.Gender(v.Get("gender")); g.IsValid() {
		state.Gender = g
	}
	return state, true
}
