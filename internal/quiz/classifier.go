package quiz

import (
	"sort"

	"theinsight/internal/model"
)

// ResultKey is the tagged classification key: a single dominant trait when
// High is set, otherwise a two-trait blend.
type ResultKey struct {
	High   bool
	First  model.DISCType
	Second model.DISCType
}

// String renders the key the way the narrative bank stores it, e.g.
// "High D" or "DI".
func (k ResultKey) String() string {
	if k.High {
		return "High " + string(k.First)
	}
	return string(k.First) + string(k.Second)
}

// dominanceThreshold is the inclusive ratio above which a single trait
// counts as dominant
const dominanceThreshold = 0.6

// Rank orders the four types by count descending. Ties keep the canonical
// D, I, S, C order, so equal tallies always rank the same way.
func Rank(t model.ScoreTally) []model.DISCType {
	ranked := make([]model.DISCType, len(model.CanonicalOrder))
	copy(ranked, model.CanonicalOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.Count(ranked[i]) > t.Count(ranked[j])
	})
	return ranked
}

// Classify resolves a tally to its classification key. Pure: the same tally
// always yields the same key. An all-zero tally divides against a floor of 1
// and classifies as the canonical blend.
func Classify(t model.ScoreTally) ResultKey {
	ranked := Rank(t)
	first, second := ranked[0], ranked[1]
	if t.Count(second) == 0 && t.Count(first) > 0 {
		second = first
	}

	total := t.Total()
	if total < 1 {
		total = 1
	}
	ratio := float64(t.Count(first)) / float64(total)

	if ratio >= dominanceThreshold {
		return ResultKey{High: true, First: first, Second: first}
	}
	return ResultKey{First: first, Second: second}
}
