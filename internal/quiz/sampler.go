package quiz

import (
	"errors"
	"math/rand"

	"theinsight/internal/model"
)

// ErrNoQuestions means no question matched the demographic even after
// fallback; the caller must not start a quiz.
var ErrNoQuestions = errors.New("no questions available for this demographic")

// SampleRequest carries the demographic inputs for one sampling run.
// GenderPartition is false for configurations without a gender stage; the
// id-space partition and the gender-only fallback are then skipped.
type SampleRequest struct {
	Age             model.AgeGroup
	Gender          model.Gender
	GenderPartition bool
	Count           int
}

// Sample filters the source table for the demographic, shuffles the pool and
// picks the first Count questions, each with independently shuffled options.
// The source slice is never mutated. The returned count is the possibly
// reduced actual count. Randomness comes only from rng, so a seeded
// generator makes the run deterministic.
func Sample(source []model.Question, req SampleRequest, rng *rand.Rand) ([]model.Question, int, error) {
	ageRange, ok := req.Age.Range()
	if !ok {
		return nil, 0, ErrNoQuestions
	}

	// Dedup by id, keeping the first occurrence. Ids are expected unique.
	seen := make(map[int]bool, len(source))
	unique := make([]model.Question, 0, len(source))
	for _, q := range source {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		unique = append(unique, q)
	}

	idMin, idMax := req.Gender.IDRange()
	genderMatch := func(q model.Question) bool {
		if !req.GenderPartition {
			return true
		}
		return q.ID >= idMin && q.ID <= idMax
	}

	// Range-overlap age policy: the group's full range must intersect the
	// question's target range, boundaries inclusive.
	ageMatch := func(q model.Question) bool {
		return q.TargetAgeMin <= ageRange.Max && q.TargetAgeMax >= ageRange.Min
	}

	pool := make([]model.Question, 0, len(unique))
	for _, q := range unique {
		if genderMatch(q) && ageMatch(q) {
			pool = append(pool, q)
		}
	}

	// Fallback: with a gender dimension a thin primary pool widens to the
	// gender-only set. Without one there is nothing safe to widen to.
	if req.GenderPartition && len(pool) < req.Count {
		pool = pool[:0]
		for _, q := range unique {
			if genderMatch(q) {
				pool = append(pool, q)
			}
		}
	}
	if len(pool) == 0 {
		return nil, 0, ErrNoQuestions
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	count := req.Count
	if len(pool) < count {
		count = len(pool)
	}
	selected := make([]model.Question, count)
	copy(selected, pool[:count])

	// Each question gets its own option order, drawn independently of the
	// question shuffle.
	for i := range selected {
		opts := make([]model.Option, len(selected[i].Options))
		copy(opts, selected[i].Options)
		rng.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
		selected[i].Options = opts
	}

	return selected, count, nil
}
