package quiz

import (
	"errors"
	"math/rand"
	"time"

	"theinsight/internal/model"
)

var (
	// ErrInvalidTransition means the event is not legal on the current screen
	ErrInvalidTransition = errors.New("transition not permitted from current screen")

	// ErrBusy means a previous answer submission is still settling
	ErrBusy = errors.New("previous answer still settling")
)

// Config selects which optional stages a deployment runs and tunes the
// timing knobs of the machine.
type Config struct {
	// GenderStage enables the gender screen and the id-space partition
	GenderStage bool

	// AnalyzingStage gates RESULT behind a fixed-delay interstitial
	AnalyzingStage bool
	AnalyzeDelay   time.Duration

	// ReviewDepth caps how far behind the frontier backward navigation may
	// go; 0 means unbounded within the session
	ReviewDepth int

	// AnswerDebounce rejects a second answer while the previous one settles
	AnswerDebounce time.Duration
}

// DefaultConfig mirrors the full configuration: gender stage on, analyzing
// interstitial on, unbounded review.
func DefaultConfig() Config {
	return Config{
		GenderStage:    true,
		AnalyzingStage: true,
		AnalyzeDelay:   2200 * time.Millisecond,
		ReviewDepth:    0,
		AnswerDebounce: 200 * time.Millisecond,
	}
}

// Stages returns the ordered list of enabled screens; the transition graph
// is derived from this list rather than hand-cased per configuration.
func (c Config) Stages() []model.Screen {
	stages := []model.Screen{model.ScreenHome}
	if c.GenderStage {
		stages = append(stages, model.ScreenGenderSelect)
	}
	stages = append(stages, model.ScreenAgeSelect, model.ScreenModeSelect, model.ScreenQuiz)
	if c.AnalyzingStage {
		stages = append(stages, model.ScreenAnalyzing)
	}
	return append(stages, model.ScreenResult)
}

func (c Config) stageIndex(screen model.Screen) int {
	for i, s := range c.Stages() {
		if s == screen {
			return i
		}
	}
	return -1
}

// nextStage returns the screen after the given one in the enabled-stage list
func (c Config) nextStage(screen model.Screen) (model.Screen, bool) {
	stages := c.Stages()
	i := c.stageIndex(screen)
	if i < 0 || i+1 >= len(stages) {
		return "", false
	}
	return stages[i+1], true
}

// prevStage returns the screen before the given one
func (c Config) prevStage(screen model.Screen) (model.Screen, bool) {
	stages := c.Stages()
	i := c.stageIndex(screen)
	if i <= 0 {
		return "", false
	}
	return stages[i-1], true
}

// Start moves a fresh session off the home screen
func Start(s *model.QuizSession, cfg Config) error {
	if s.Screen != model.ScreenHome {
		return ErrInvalidTransition
	}
	next, _ := cfg.nextStage(model.ScreenHome)
	s.Screen = next
	return nil
}

// SelectGender records the gender and advances to the age screen
func SelectGender(s *model.QuizSession, g model.Gender, cfg Config) error {
	if s.Screen != model.ScreenGenderSelect || !g.IsValid() {
		return ErrInvalidTransition
	}
	s.Gender = g
	s.Screen = model.ScreenAgeSelect
	return nil
}

// SelectAge records the age group and advances to the mode screen
func SelectAge(s *model.QuizSession, a model.AgeGroup) error {
	if s.Screen != model.ScreenAgeSelect || !a.IsValid() {
		return ErrInvalidTransition
	}
	s.Age = a
	s.Screen = model.ScreenModeSelect
	return nil
}

// SelectMode samples the question pool for the chosen depth and enters the
// quiz. On ErrNoQuestions the session stays on the mode screen.
func SelectMode(s *model.QuizSession, id model.TestModeID, source []model.Question, cfg Config, rng *rand.Rand) error {
	if s.Screen != model.ScreenModeSelect {
		return ErrInvalidTransition
	}
	mode, ok := model.ModeByID(id)
	if !ok {
		return ErrInvalidTransition
	}

	questions, actual, err := Sample(source, SampleRequest{
		Age:             s.Age,
		Gender:          s.Gender,
		GenderPartition: cfg.GenderStage,
		Count:           mode.RequestedCount,
	}, rng)
	if err != nil {
		return err
	}

	mode.ActualCount = actual
	s.Mode = &mode
	s.Questions = questions
	s.Position = 0
	s.MaxPosition = 0
	s.Answers = make(map[int]model.DISCType, actual)
	s.Scores = model.ScoreTally{}
	s.Screen = model.ScreenQuiz
	return nil
}

// Back is the single backward event. On the quiz screen it steps to the
// previous question, or leaves for the mode screen from the first question;
// on the demographic screens it walks one stage up the enabled-stage list.
func Back(s *model.QuizSession, cfg Config) error {
	switch s.Screen {
	case model.ScreenQuiz:
		if s.Position > 0 {
			return GoToPrevious(s, cfg)
		}
		// Leaving the quiz discards the sampled sequence; re-entering
		// samples fresh.
		s.Questions = nil
		s.Answers = nil
		s.Mode = nil
		s.Position = 0
		s.MaxPosition = 0
		s.Screen = model.ScreenModeSelect
		return nil
	case model.ScreenModeSelect:
		s.Screen = model.ScreenAgeSelect
		return nil
	case model.ScreenAgeSelect:
		// Only legal when the configuration has a gender stage to return to
		if prev, ok := cfg.prevStage(s.Screen); ok && prev == model.ScreenGenderSelect {
			s.Screen = prev
			return nil
		}
		return ErrInvalidTransition
	default:
		return ErrInvalidTransition
	}
}

// CompleteAnalyzing flips ANALYZING to RESULT once the deadline has passed.
// It reports whether the screen changed.
func CompleteAnalyzing(s *model.QuizSession, now time.Time) bool {
	if s.Screen != model.ScreenAnalyzing || now.Before(s.AnalyzingUntil) {
		return false
	}
	s.Screen = model.ScreenResult
	s.AnalyzingUntil = time.Time{}
	return true
}

// Reset returns an in-flow session to the home screen, dropping every
// session parameter. Shared-link sessions are discarded by the caller
// instead of reset in place.
func Reset(s *model.QuizSession) {
	s.Screen = model.ScreenHome
	s.Gender = ""
	s.Age = ""
	s.Mode = nil
	s.Questions = nil
	s.Answers = nil
	s.Position = 0
	s.MaxPosition = 0
	s.Scores = model.ScoreTally{}
	s.BusyUntil = time.Time{}
	s.AnalyzingUntil = time.Time{}
}
