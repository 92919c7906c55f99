package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theinsight/internal/model"
)

func quizConfig() Config {
	cfg := DefaultConfig()
	cfg.AnswerDebounce = 0 // tests drive events directly
	return cfg
}

// sessionInQuiz builds a session mid-quiz with n sampled questions
func sessionInQuiz(n int) *model.QuizSession {
	questions := make([]model.Question, 0, n)
	for id := 1; id <= n; id++ {
		questions = append(questions, testQuestion(id, 10, 99))
	}
	return &model.QuizSession{
		ID:        "qs_test",
		Screen:    model.ScreenQuiz,
		Age:       model.Age20s,
		Gender:    model.GenderMale,
		Questions: questions,
		Answers:   map[int]model.DISCType{},
	}
}

func TestStagesReflectConfiguration(t *testing.T) {
	full := DefaultConfig()
	assert.Equal(t, []model.Screen{
		model.ScreenHome, model.ScreenGenderSelect, model.ScreenAgeSelect,
		model.ScreenModeSelect, model.ScreenQuiz, model.ScreenAnalyzing,
		model.ScreenResult,
	}, full.Stages())

	lean := Config{}
	assert.Equal(t, []model.Screen{
		model.ScreenHome, model.ScreenAgeSelect, model.ScreenModeSelect,
		model.ScreenQuiz, model.ScreenResult,
	}, lean.Stages())
}

func TestForwardFlowWithGenderStage(t *testing.T) {
	cfg := quizConfig()
	s := &model.QuizSession{ID: "qs_test", Screen: model.ScreenHome}

	require.NoError(t, Start(s, cfg))
	assert.Equal(t, model.ScreenGenderSelect, s.Screen)

	require.NoError(t, SelectGender(s, model.GenderFemale, cfg))
	assert.Equal(t, model.ScreenAgeSelect, s.Screen)

	require.NoError(t, SelectAge(s, model.Age20s))
	assert.Equal(t, model.ScreenModeSelect, s.Screen)
}

func TestForwardFlowSkipsDisabledGenderStage(t *testing.T) {
	cfg := quizConfig()
	cfg.GenderStage = false
	s := &model.QuizSession{ID: "qs_test", Screen: model.ScreenHome}

	require.NoError(t, Start(s, cfg))
	assert.Equal(t, model.ScreenAgeSelect, s.Screen)
}

func TestBackwardScreenTransitions(t *testing.T) {
	cfg := quizConfig()

	s := &model.QuizSession{Screen: model.ScreenModeSelect}
	require.NoError(t, Back(s, cfg))
	assert.Equal(t, model.ScreenAgeSelect, s.Screen)

	require.NoError(t, Back(s, cfg))
	assert.Equal(t, model.ScreenGenderSelect, s.Screen)

	// No gender stage: age screen has nowhere legal to go back to
	lean := quizConfig()
	lean.GenderStage = false
	s = &model.QuizSession{Screen: model.ScreenAgeSelect}
	assert.ErrorIs(t, Back(s, lean), ErrInvalidTransition)
}

func TestBackFromFirstQuestionLeavesQuiz(t *testing.T) {
	cfg := quizConfig()
	s := sessionInQuiz(3)
	mode, _ := model.ModeByID(model.ModeCore)
	s.Mode = &mode

	require.NoError(t, Back(s, cfg))
	assert.Equal(t, model.ScreenModeSelect, s.Screen)
	assert.Nil(t, s.Questions)
	assert.Nil(t, s.Mode)
}

func TestSelectModeEntersQuiz(t *testing.T) {
	cfg := quizConfig()
	source := make([]model.Question, 0, 8)
	for id := 1; id <= 8; id++ {
		source = append(source, testQuestion(id, 10, 99))
	}
	s := &model.QuizSession{
		Screen: model.ScreenModeSelect,
		Age:    model.Age20s,
		Gender: model.GenderMale,
	}

	require.NoError(t, SelectMode(s, model.ModeCore, source, cfg, testRand(1)))
	assert.Equal(t, model.ScreenQuiz, s.Screen)
	require.NotNil(t, s.Mode)
	assert.Equal(t, 50, s.Mode.RequestedCount)
	assert.Equal(t, 8, s.Mode.ActualCount)
	assert.Len(t, s.Questions, 8)
	assert.Equal(t, 0, s.Position)
	assert.Equal(t, 0, s.MaxPosition)
}

func TestSelectModeNoQuestionsStaysOnModeScreen(t *testing.T) {
	cfg := quizConfig()
	cfg.GenderStage = false
	source := []model.Question{testQuestion(1, 50, 59)}
	s := &model.QuizSession{Screen: model.ScreenModeSelect, Age: model.Age20s}

	err := SelectMode(s, model.ModeCore, source, cfg, testRand(1))
	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, model.ScreenModeSelect, s.Screen)
	assert.Nil(t, s.Questions)
}

func TestAnswerAdvancesFrontier(t *testing.T) {
	cfg := quizConfig()
	s := sessionInQuiz(3)
	now := time.Now()

	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	assert.Equal(t, 1, s.Position)
	assert.Equal(t, 1, s.MaxPosition)

	require.NoError(t, SelectAnswer(s, model.TypeI, cfg, now))
	assert.Equal(t, 2, s.Position)
	assert.Equal(t, 2, s.MaxPosition)
}

func TestAnswerDebounce(t *testing.T) {
	cfg := quizConfig()
	cfg.AnswerDebounce = 200 * time.Millisecond
	s := sessionInQuiz(5)
	now := time.Now()

	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	assert.ErrorIs(t, SelectAnswer(s, model.TypeI, cfg, now.Add(50*time.Millisecond)), ErrBusy)
	assert.Equal(t, 1, s.Position)

	require.NoError(t, SelectAnswer(s, model.TypeI, cfg, now.Add(250*time.Millisecond)))
	assert.Equal(t, 2, s.Position)
}

func TestLastAnswerFinalizesIntoAnalyzing(t *testing.T) {
	cfg := quizConfig()
	cfg.AnalyzeDelay = 2200 * time.Millisecond
	s := sessionInQuiz(2)
	now := time.Now()

	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	require.NoError(t, SelectAnswer(s, model.TypeS, cfg, now))

	assert.Equal(t, model.ScreenAnalyzing, s.Screen)
	assert.Equal(t, model.ScoreTally{D: 1, S: 1}, s.Scores)
	assert.Equal(t, now.Add(cfg.AnalyzeDelay), s.AnalyzingUntil)

	// Deadline not reached yet
	assert.False(t, CompleteAnalyzing(s, now.Add(time.Second)))
	assert.Equal(t, model.ScreenAnalyzing, s.Screen)

	assert.True(t, CompleteAnalyzing(s, now.Add(3*time.Second)))
	assert.Equal(t, model.ScreenResult, s.Screen)
}

func TestFinalizeSkipsAnalyzingWhenDisabled(t *testing.T) {
	cfg := quizConfig()
	cfg.AnalyzingStage = false
	s := sessionInQuiz(1)

	require.NoError(t, SelectAnswer(s, model.TypeC, cfg, time.Now()))
	assert.Equal(t, model.ScreenResult, s.Screen)
	assert.Equal(t, model.ScoreTally{C: 1}, s.Scores)
}

func TestRevisionDoesNotAdvanceFrontier(t *testing.T) {
	// Answer Q0=D, Q1=I, go back to Q0, re-answer S, advance, finalize:
	// previous I at Q1 is retained and the tally is I:1 S:1.
	cfg := quizConfig()
	s := sessionInQuiz(2)
	now := time.Now()

	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	require.NoError(t, GoToPrevious(s, cfg))
	assert.Equal(t, 0, s.Position)
	assert.Equal(t, 1, s.MaxPosition)

	// Revising below the frontier overwrites and advances position only
	require.NoError(t, SelectAnswer(s, model.TypeS, cfg, now))
	assert.Equal(t, 1, s.Position)
	assert.Equal(t, 1, s.MaxPosition)

	// Q1 is the last question and the frontier: answering finalizes
	require.NoError(t, SelectAnswer(s, model.TypeI, cfg, now))
	assert.Equal(t, model.ScoreTally{S: 1, I: 1}, s.Scores)
}

func TestLedgerRevisionScenario(t *testing.T) {
	// Three questions so finalization happens at Q2, leaving the Q0
	// revision and the retained Q1 answer both visible in the tally.
	cfg := quizConfig()
	s := sessionInQuiz(3)
	now := time.Now()

	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now)) // Q0 = D
	require.NoError(t, SelectAnswer(s, model.TypeI, cfg, now)) // Q1 = I, frontier 2
	require.NoError(t, GoToPrevious(s, cfg))
	require.NoError(t, GoToPrevious(s, cfg))
	assert.Equal(t, 0, s.Position)

	require.NoError(t, SelectAnswer(s, model.TypeS, cfg, now)) // Q0 = S now
	assert.Equal(t, 1, s.Position)
	assert.Equal(t, 2, s.MaxPosition)

	// Keep Q1's I by navigating, not re-answering
	require.NoError(t, GoToNext(s))
	assert.Equal(t, 2, s.Position)

	require.NoError(t, SelectAnswer(s, model.TypeC, cfg, now)) // Q2 = C, finalize
	assert.Equal(t, model.ScoreTally{D: 0, I: 1, S: 1, C: 1}, s.Scores)
}

func TestNavigationGuards(t *testing.T) {
	cfg := quizConfig()
	s := sessionInQuiz(5)
	now := time.Now()

	// Cannot go back from position 0 inside the ledger
	assert.ErrorIs(t, GoToPrevious(s, cfg), ErrInvalidTransition)
	// Cannot go forward past the frontier
	assert.ErrorIs(t, GoToNext(s), ErrInvalidTransition)

	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	require.NoError(t, GoToPrevious(s, cfg))
	require.NoError(t, GoToPrevious(s, cfg))

	require.NoError(t, JumpToFrontier(s))
	assert.Equal(t, s.MaxPosition, s.Position)
}

func TestReviewDepthBoundsBackwardNavigation(t *testing.T) {
	cfg := quizConfig()
	cfg.ReviewDepth = 2
	s := sessionInQuiz(10)
	now := time.Now()

	for i := 0; i < 5; i++ {
		require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	}
	require.Equal(t, 5, s.MaxPosition)

	require.NoError(t, GoToPrevious(s, cfg)) // 4
	require.NoError(t, GoToPrevious(s, cfg)) // 3 = frontier - depth
	assert.ErrorIs(t, GoToPrevious(s, cfg), ErrInvalidTransition)
	assert.Equal(t, 3, s.Position)
}

func TestFoldTreatsMissingEntriesAsZero(t *testing.T) {
	tally := Fold(map[int]model.DISCType{0: model.TypeD, 2: model.TypeD}, 5)
	assert.Equal(t, model.ScoreTally{D: 2}, tally)
	assert.Equal(t, 2, tally.Total())
}

func TestTallyConservation(t *testing.T) {
	cfg := quizConfig()
	s := sessionInQuiz(6)
	now := time.Now()
	answers := []model.DISCType{
		model.TypeD, model.TypeI, model.TypeS,
		model.TypeC, model.TypeD, model.TypeD,
	}
	for _, a := range answers {
		require.NoError(t, SelectAnswer(s, a, cfg, now))
	}
	assert.Equal(t, len(answers), s.Scores.Total())
	assert.Equal(t, model.ScoreTally{D: 3, I: 1, S: 1, C: 1}, s.Scores)
}

func TestResetClearsSession(t *testing.T) {
	cfg := quizConfig()
	s := sessionInQuiz(2)
	now := time.Now()
	require.NoError(t, SelectAnswer(s, model.TypeD, cfg, now))
	require.NoError(t, SelectAnswer(s, model.TypeI, cfg, now))
	require.Equal(t, model.ScreenAnalyzing, s.Screen)

	Reset(s)
	assert.Equal(t, model.ScreenHome, s.Screen)
	assert.Nil(t, s.Questions)
	assert.Nil(t, s.Answers)
	assert.Equal(t, model.ScoreTally{}, s.Scores)
	assert.True(t, s.AnalyzingUntil.IsZero())

	// A stale analyzing deadline must not fire after reset
	assert.False(t, CompleteAnalyzing(s, now.Add(time.Hour)))
	assert.Equal(t, model.ScreenHome, s.Screen)
}
