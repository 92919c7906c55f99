package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theinsight/internal/model"
)

func testQuestion(id, ageMin, ageMax int) model.Question {
	return model.Question{
		ID:           id,
		Text:         "q",
		TargetAgeMin: ageMin,
		TargetAgeMax: ageMax,
		Options: []model.Option{
			{Text: "a", Type: model.TypeD},
			{Text: "b", Type: model.TypeI},
			{Text: "c", Type: model.TypeS},
			{Text: "d", Type: model.TypeC},
		},
	}
}

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestSampleDeduplicatesByID(t *testing.T) {
	source := []model.Question{
		testQuestion(1, 10, 99),
		testQuestion(1, 10, 99),
		testQuestion(2, 10, 99),
		testQuestion(2, 10, 99),
		testQuestion(3, 10, 99),
	}

	selected, count, err := Sample(source, SampleRequest{
		Age:   model.Age20s,
		Count: 10,
	}, testRand(1))
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	seen := map[int]bool{}
	for _, q := range selected {
		assert.False(t, seen[q.ID], "id %d sampled twice", q.ID)
		seen[q.ID] = true
	}
}

func TestSampleAgeOverlapBoundaries(t *testing.T) {
	// 20s covers 20-29; boundary equality must be included
	tests := []struct {
		name     string
		ageMin   int
		ageMax   int
		included bool
	}{
		{"fully inside", 22, 25, true},
		{"question max equals group min", 10, 20, true},
		{"question min equals group max", 29, 45, true},
		{"below group", 10, 19, false},
		{"above group", 30, 49, false},
		{"spanning group", 10, 99, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := []model.Question{testQuestion(1, tt.ageMin, tt.ageMax)}
			_, count, err := Sample(source, SampleRequest{
				Age:   model.Age20s,
				Count: 1,
			}, testRand(1))
			if tt.included {
				require.NoError(t, err)
				assert.Equal(t, 1, count)
			} else {
				assert.ErrorIs(t, err, ErrNoQuestions)
			}
		})
	}
}

func TestSampleGenderPartition(t *testing.T) {
	source := []model.Question{
		testQuestion(1, 10, 99),
		testQuestion(865, 10, 99),
		testQuestion(866, 10, 99),
		testQuestion(1715, 10, 99),
	}

	selected, count, err := Sample(source, SampleRequest{
		Age:             model.Age20s,
		Gender:          model.GenderFemale,
		GenderPartition: true,
		Count:           10,
	}, testRand(1))
	require.NoError(t, err)
	require.Equal(t, 2, count)
	for _, q := range selected {
		assert.GreaterOrEqual(t, q.ID, 866)
		assert.LessOrEqual(t, q.ID, 1715)
	}

	// O shares the male partition
	selected, _, err = Sample(source, SampleRequest{
		Age:             model.Age20s,
		Gender:          model.GenderOther,
		GenderPartition: true,
		Count:           10,
	}, testRand(1))
	require.NoError(t, err)
	for _, q := range selected {
		assert.LessOrEqual(t, q.ID, 865)
	}
}

func TestSampleFallbackDropsAgeFilter(t *testing.T) {
	// Only one male question matches 20s; the rest match other ages.
	source := []model.Question{
		testQuestion(1, 20, 29),
		testQuestion(2, 50, 59),
		testQuestion(3, 50, 59),
		testQuestion(4, 50, 59),
	}

	selected, count, err := Sample(source, SampleRequest{
		Age:             model.Age20s,
		Gender:          model.GenderMale,
		GenderPartition: true,
		Count:           3,
	}, testRand(7))
	require.NoError(t, err)

	// Fallback pool is all four gender-matched questions
	assert.Equal(t, 3, count)
	assert.Len(t, selected, 3)
}

func TestSampleNoFallbackWithoutGenderDimension(t *testing.T) {
	source := []model.Question{
		testQuestion(1, 50, 59),
		testQuestion(2, 50, 59),
	}

	_, _, err := Sample(source, SampleRequest{
		Age:   model.Age20s,
		Count: 5,
	}, testRand(1))
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestSampleReducedCountFromSmallPool(t *testing.T) {
	// CORE requests 50; only 4 questions survive the filter
	source := []model.Question{
		testQuestion(1, 20, 29),
		testQuestion(2, 20, 29),
		testQuestion(3, 20, 29),
		testQuestion(4, 20, 29),
	}

	selected, count, err := Sample(source, SampleRequest{
		Age:   model.Age20s,
		Count: 50,
	}, testRand(3))
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Len(t, selected, 4)
}

func TestSampleShuffleIsPermutation(t *testing.T) {
	source := make([]model.Question, 0, 30)
	for id := 1; id <= 30; id++ {
		source = append(source, testQuestion(id, 10, 99))
	}

	selected, count, err := Sample(source, SampleRequest{
		Age:   model.Age30s,
		Count: 30,
	}, testRand(42))
	require.NoError(t, err)
	require.Equal(t, 30, count)

	ids := map[int]int{}
	for _, q := range selected {
		ids[q.ID]++
	}
	for id := 1; id <= 30; id++ {
		assert.Equal(t, 1, ids[id], "id %d", id)
	}

	// Options keep the same multiset per question
	for _, q := range selected {
		types := map[model.DISCType]int{}
		for _, o := range q.Options {
			types[o.Type]++
		}
		assert.Equal(t, map[model.DISCType]int{
			model.TypeD: 1, model.TypeI: 1, model.TypeS: 1, model.TypeC: 1,
		}, types)
	}

	// Different seeds produce a different order eventually
	other, _, err := Sample(source, SampleRequest{
		Age:   model.Age30s,
		Count: 30,
	}, testRand(43))
	require.NoError(t, err)
	different := false
	for i := range selected {
		if selected[i].ID != other[i].ID {
			different = true
			break
		}
	}
	assert.True(t, different, "two seeds produced identical order")
}

func TestSampleDoesNotMutateSource(t *testing.T) {
	source := []model.Question{
		testQuestion(1, 10, 99),
		testQuestion(2, 10, 99),
		testQuestion(3, 10, 99),
	}
	originalOrder := []int{source[0].ID, source[1].ID, source[2].ID}
	originalOpts := source[0].Options[0]

	_, _, err := Sample(source, SampleRequest{Age: model.Age20s, Count: 3}, testRand(99))
	require.NoError(t, err)

	assert.Equal(t, originalOrder, []int{source[0].ID, source[1].ID, source[2].ID})
	assert.Equal(t, originalOpts, source[0].Options[0])
}

func TestSampleSeededDeterminism(t *testing.T) {
	source := make([]model.Question, 0, 20)
	for id := 1; id <= 20; id++ {
		source = append(source, testQuestion(id, 10, 99))
	}

	a, _, err := Sample(source, SampleRequest{Age: model.Age40s, Count: 10}, testRand(5))
	require.NoError(t, err)
	b, _, err := Sample(source, SampleRequest{Age: model.Age40s, Count: 10}, testRand(5))
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Options, b[i].Options)
	}
}
