package quiz

import (
	"time"

	"theinsight/internal/model"
)

// SelectAnswer records the chosen type at the current position. At the
// frontier it advances both position and frontier, or finalizes the quiz on
// the last question; below the frontier it overwrites the earlier answer and
// advances position only. The debounce window rejects a second submission
// while the previous one settles.
func SelectAnswer(s *model.QuizSession, t model.DISCType, cfg Config, now time.Time) error {
	if s.Screen != model.ScreenQuiz || !t.IsValid() {
		return ErrInvalidTransition
	}
	if now.Before(s.BusyUntil) {
		return ErrBusy
	}
	if s.Answers == nil {
		s.Answers = make(map[int]model.DISCType)
	}
	s.Answers[s.Position] = t
	s.BusyUntil = now.Add(cfg.AnswerDebounce)

	atFrontier := s.Position == s.MaxPosition
	lastIndex := len(s.Questions) - 1

	if atFrontier && s.Position == lastIndex {
		finalize(s, cfg, now)
		return nil
	}

	s.Position++
	if atFrontier {
		s.MaxPosition++
	}
	return nil
}

// finalize folds the ledger into the score tally and leaves the quiz screen
func finalize(s *model.QuizSession, cfg Config, now time.Time) {
	s.Scores = Fold(s.Answers, len(s.Questions))
	s.BusyUntil = time.Time{}
	if cfg.AnalyzingStage {
		s.Screen = model.ScreenAnalyzing
		s.AnalyzingUntil = now.Add(cfg.AnalyzeDelay)
		return
	}
	s.Screen = model.ScreenResult
}

// Fold tallies the ledger over all declared indices. A position with no
// recorded answer contributes nothing; the fold never fails.
func Fold(answers map[int]model.DISCType, count int) model.ScoreTally {
	var tally model.ScoreTally
	for i := 0; i < count; i++ {
		if t, ok := answers[i]; ok {
			tally.Inc(t)
		}
	}
	return tally
}

// GoToPrevious steps back one question. It is legal only above position
// zero and, when a review depth is configured, no further behind the
// frontier than that depth.
func GoToPrevious(s *model.QuizSession, cfg Config) error {
	if s.Screen != model.ScreenQuiz || s.Position <= 0 {
		return ErrInvalidTransition
	}
	if cfg.ReviewDepth > 0 && s.Position-1 < s.MaxPosition-cfg.ReviewDepth {
		return ErrInvalidTransition
	}
	s.Position--
	return nil
}

// GoToNext steps forward through already-answered questions. Only answering
// advances the frontier, so navigation stops there.
func GoToNext(s *model.QuizSession) error {
	if s.Screen != model.ScreenQuiz || s.Position >= s.MaxPosition {
		return ErrInvalidTransition
	}
	s.Position++
	return nil
}

// JumpToFrontier returns straight to the first unanswered question
func JumpToFrontier(s *model.QuizSession) error {
	if s.Screen != model.ScreenQuiz {
		return ErrInvalidTransition
	}
	s.Position = s.MaxPosition
	return nil
}
