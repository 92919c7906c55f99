package content

import (
	"errors"

	"theinsight/internal/model"
	"theinsight/internal/quiz"
)

// ErrEmptyBank means a bank was constructed without any entries
var ErrEmptyBank = errors.New("content bank is empty")

// QuestionBank is the process-wide, read-only question table. Loaded once,
// shared across any number of sessions.
type QuestionBank struct {
	questions []model.Question
}

// NewQuestionBank builds a bank from the raw table, dropping duplicate ids
// (first occurrence wins).
func NewQuestionBank(source []model.Question) (*QuestionBank, error) {
	seen := make(map[int]bool, len(source))
	questions := make([]model.Question, 0, len(source))
	for _, q := range source {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}
	return &QuestionBank{questions: questions}, nil
}

// All returns the full table. Callers must treat it as read-only; the
// sampler copies before shuffling.
func (b *QuestionBank) All() []model.Question {
	return b.questions
}

// Len returns the number of distinct questions
func (b *QuestionBank) Len() int {
	return len(b.questions)
}

// ResultBank is the process-wide, read-only narrative table keyed by
// classification key.
type ResultBank struct {
	entries []model.ResultContent
	byKey   map[string]model.ResultContent
}

// NewResultBank builds a bank from the raw table. Order matters: the first
// entry is the terminal fallback of the lookup cascade.
func NewResultBank(source []model.ResultContent) (*ResultBank, error) {
	if len(source) == 0 {
		return nil, ErrEmptyBank
	}
	byKey := make(map[string]model.ResultContent, len(source))
	entries := make([]model.ResultContent, 0, len(source))
	for _, rc := range source {
		if _, dup := byKey[rc.TypeKey]; dup {
			continue
		}
		byKey[rc.TypeKey] = rc
		entries = append(entries, rc)
	}
	return &ResultBank{entries: entries, byKey: byKey}, nil
}

// Resolve looks a classification key up with the three-step cascade: exact
// key, then the primary type alone, then the first entry of the bank. A
// result is always produced.
func (b *ResultBank) Resolve(key quiz.ResultKey) model.ResultContent {
	if rc, ok := b.byKey[key.String()]; ok {
		return rc
	}
	if rc, ok := b.byKey[string(key.First)]; ok {
		return rc
	}
	return b.entries[0]
}

// Len returns the number of distinct entries
func (b *ResultBank) Len() int {
	return len(b.entries)
}
