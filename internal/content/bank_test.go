package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theinsight/internal/model"
	"theinsight/internal/quiz"
)

func TestNewQuestionBankDeduplicates(t *testing.T) {
	bank, err := NewQuestionBank([]model.Question{
		{ID: 1, Text: "first"},
		{ID: 2, Text: "second"},
		{ID: 1, Text: "shadowed"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, bank.Len())
	assert.Equal(t, "first", bank.All()[0].Text)
}

func TestNewQuestionBankRejectsEmptyTable(t *testing.T) {
	_, err := NewQuestionBank(nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestResultBankResolveCascade(t *testing.T) {
	bank, err := NewResultBank([]model.ResultContent{
		{TypeKey: "High D", BaseName: "Commander"},
		{TypeKey: "D", BaseName: "Driver"},
		{TypeKey: "DI", BaseName: "Pioneer"},
	})
	require.NoError(t, err)

	// Exact key
	rc := bank.Resolve(quiz.ResultKey{High: true, First: model.TypeD, Second: model.TypeD})
	assert.Equal(t, "Commander", rc.BaseName)

	rc = bank.Resolve(quiz.ResultKey{First: model.TypeD, Second: model.TypeI})
	assert.Equal(t, "Pioneer", rc.BaseName)

	// Blend missing, primary type present
	rc = bank.Resolve(quiz.ResultKey{First: model.TypeD, Second: model.TypeS})
	assert.Equal(t, "Driver", rc.BaseName)

	// Neither blend nor primary known: first entry is the terminal fallback
	rc = bank.Resolve(quiz.ResultKey{First: model.TypeC, Second: model.TypeS})
	assert.Equal(t, "Commander", rc.BaseName)
}

func TestNewResultBankRejectsEmptyTable(t *testing.T) {
	_, err := NewResultBank(nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestDefaultContentIsWellFormed(t *testing.T) {
	qb, err := NewQuestionBank(DefaultQuestions())
	require.NoError(t, err)
	require.Greater(t, qb.Len(), 0)
	for _, q := range qb.All() {
		assert.Len(t, q.Options, 4, "question %d", q.ID)
		seen := map[model.DISCType]bool{}
		for _, opt := range q.Options {
			assert.True(t, opt.Type.IsValid(), "question %d", q.ID)
			seen[opt.Type] = true
		}
		assert.Len(t, seen, 4, "question %d covers all four types", q.ID)
	}

	rb, err := NewResultBank(DefaultResults())
	require.NoError(t, err)

	// Every classifier output resolves without hitting the terminal fallback
	for _, first := range model.CanonicalOrder {
		rc := rb.Resolve(quiz.ResultKey{High: true, First: first, Second: first})
		assert.Equal(t, "High "+string(first), rc.TypeKey)
		for _, second := range model.CanonicalOrder {
			if first == second {
				continue
			}
			rc := rb.Resolve(quiz.ResultKey{First: first, Second: second})
			assert.Equal(t, string(first)+string(second), rc.TypeKey)
		}
	}
}
