package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/google/uuid"

	"theinsight/internal/cache"
	"theinsight/internal/content"
	"theinsight/internal/model"
	"theinsight/internal/quiz"
)

// ErrSessionNotFound means the session id is unknown or has expired
var ErrSessionNotFound = errors.New("session not found")

// SessionService orchestrates the quiz engine per session: every HTTP call
// loads the session from the cache, applies exactly one transition, and
// writes it back. The content banks it reads are immutable.
type SessionService struct {
	sessions  cache.SessionCache
	questions *content.QuestionBank
	results   *content.ResultBank
	cfg       quiz.Config
	baseURL   string

	newRand func() *rand.Rand
	now     func() time.Time
}

// NewSessionService creates a session service over the given cache and banks
func NewSessionService(sessions cache.SessionCache, questions *content.QuestionBank, results *content.ResultBank, cfg quiz.Config, baseURL string) *SessionService {
	return &SessionService{
		sessions:  sessions,
		questions: questions,
		results:   results,
		cfg:       cfg,
		baseURL:   baseURL,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
}

// SetRand overrides the sampler's random source (tests)
func (s *SessionService) SetRand(newRand func() *rand.Rand) {
	s.newRand = newRand
}

// SetClock overrides the service clock (tests)
func (s *SessionService) SetClock(now func() time.Time) {
	s.now = now
}

// Config exposes the engine configuration the service runs with
func (s *SessionService) Config() quiz.Config {
	return s.cfg
}

// Create starts a new session on the home screen. When the request carries
// valid shared-result parameters the session bypasses every upstream screen
// and opens directly on the result, exactly as a shared link would in the
// browser; malformed or partial parameters are ignored.
func (s *SessionService) Create(ctx context.Context, shareParams url.Values) (*model.QuizSession, error) {
	now := s.now()
	session := &model.QuizSession{
		ID:        "qs_" + uuid.New().String()[:8],
		Screen:    model.ScreenHome,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if state, ok := quiz.Decode(shareParams); ok {
		session.Screen = model.ScreenResult
		session.Scores = state.Tally
		session.Age = state.Age
		session.Gender = state.Gender
		session.FromShare = true
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// Get loads a session by id
func (s *SessionService) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// apply loads the session, runs one transition and persists the outcome
func (s *SessionService) apply(ctx context.Context, id string, transition func(*model.QuizSession) error) (*model.QuizSession, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := transition(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.now()
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// Start moves the session off the home screen
func (s *SessionService) Start(ctx context.Context, id string) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.Start(sess, s.cfg)
	})
}

// SelectGender records the gender choice
func (s *SessionService) SelectGender(ctx context.Context, id string, g model.Gender) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.SelectGender(sess, g, s.cfg)
	})
}

// SelectAge records the age-group choice
func (s *SessionService) SelectAge(ctx context.Context, id string, a model.AgeGroup) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.SelectAge(sess, a)
	})
}

// SelectMode samples the pool for the chosen depth and enters the quiz
func (s *SessionService) SelectMode(ctx context.Context, id string, mode model.TestModeID) (*model.QuizSession, error) {
	rng := s.newRand()
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.SelectMode(sess, mode, s.questions.All(), s.cfg, rng)
	})
}

// Answer records the chosen type at the current position
func (s *SessionService) Answer(ctx context.Context, id string, t model.DISCType) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.SelectAnswer(sess, t, s.cfg, s.now())
	})
}

// Back steps backward: previous question inside the quiz, previous screen
// otherwise
func (s *SessionService) Back(ctx context.Context, id string) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.Back(sess, s.cfg)
	})
}

// Next steps forward through already-answered questions
func (s *SessionService) Next(ctx context.Context, id string) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.GoToNext(sess)
	})
}

// JumpToFrontier returns to the first unanswered question
func (s *SessionService) JumpToFrontier(ctx context.Context, id string) (*model.QuizSession, error) {
	return s.apply(ctx, id, func(sess *model.QuizSession) error {
		return quiz.JumpToFrontier(sess)
	})
}

// Reset returns an in-flow session to the home screen. A session that was
// reconstructed from a shared link is discarded entirely instead, mirroring
// the navigate-to-bare-origin reset in the browser; removed reports that.
func (s *SessionService) Reset(ctx context.Context, id string) (session *model.QuizSession, removed bool, err error) {
	session, err = s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if session.FromShare {
		if err := s.sessions.Delete(ctx, id); err != nil {
			return nil, false, fmt.Errorf("failed to discard session: %w", err)
		}
		return nil, true, nil
	}
	quiz.Reset(session)
	session.UpdatedAt = s.now()
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, false, fmt.Errorf("failed to store session: %w", err)
	}
	return session, false, nil
}

// ResultView is what the result endpoints hand to presentation
type ResultView struct {
	Status      string               `json:"status"` // "analyzing" or "ready"
	RemainingMS int64                `json:"remainingMs,omitempty"`
	Scores      model.ScoreTally     `json:"scores"`
	Key         string               `json:"key,omitempty"`
	Content     *model.ResultContent `json:"content,omitempty"`
	Age         model.AgeGroup       `json:"age,omitempty"`
	Gender      model.Gender         `json:"gender,omitempty"`
	ShareURL    string               `json:"shareUrl,omitempty"`
}

// Result resolves the session's result. While the analyzing delay is still
// running it reports the remaining time instead; once the deadline passes
// the session flips to the result screen and stays there.
func (s *SessionService) Result(ctx context.Context, id string) (*ResultView, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if session.Screen == model.ScreenAnalyzing {
		if !quiz.CompleteAnalyzing(session, now) {
			return &ResultView{
				Status:      "analyzing",
				RemainingMS: session.AnalyzingUntil.Sub(now).Milliseconds(),
				Scores:      session.Scores,
			}, nil
		}
		session.UpdatedAt = now
		if err := s.sessions.Set(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}
	if session.Screen != model.ScreenResult {
		return nil, quiz.ErrInvalidTransition
	}

	return s.resultView(session.Scores, session.Age, session.Gender), nil
}

// SharedResult classifies a decoded share link without any session state
func (s *SessionService) SharedResult(params url.Values) (*ResultView, error) {
	state, ok := quiz.Decode(params)
	if !ok {
		return nil, fmt.Errorf("%w: incomplete share parameters", quiz.ErrInvalidTransition)
	}
	return s.resultView(state.Tally, state.Age, state.Gender), nil
}

func (s *SessionService) resultView(tally model.ScoreTally, age model.AgeGroup, gender model.Gender) *ResultView {
	key := quiz.Classify(tally)
	resolved := s.results.Resolve(key)
	share := s.baseURL + "/?" + quiz.Encode(quiz.ShareState{Tally: tally, Age: age, Gender: gender}).Encode()
	return &ResultView{
		Status:   "ready",
		Scores:   tally,
		Key:      key.String(),
		Content:  &resolved,
		Age:      age,
		Gender:   gender,
		ShareURL: share,
	}
}
