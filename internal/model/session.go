package model

import "time"

// Screen is the single active view of a session
type Screen string

const (
	ScreenHome         Screen = "HOME"
	ScreenGenderSelect Screen = "GENDER_SELECT"
	ScreenAgeSelect    Screen = "AGE_SELECT"
	ScreenModeSelect   Screen = "MODE_SELECT"
	ScreenQuiz         Screen = "QUIZ"
	ScreenAnalyzing    Screen = "ANALYZING"
	ScreenResult       Screen = "RESULT"
)

// QuizSession is the full per-visitor state. It is serialized as JSON into
// the session cache and owned by exactly one visitor; all transitions are
// functions of this struct plus one event.
type QuizSession struct {
	ID     string `json:"id"`
	Screen Screen `json:"screen"`

	Gender Gender    `json:"gender,omitempty"`
	Age    AgeGroup  `json:"age,omitempty"`
	Mode   *TestMode `json:"mode,omitempty"`

	// Sampled quiz state, valid while Screen is QUIZ or later
	Questions   []Question       `json:"questions,omitempty"`
	Position    int              `json:"position"`
	MaxPosition int              `json:"maxPosition"`
	Answers     map[int]DISCType `json:"answers,omitempty"`

	// BusyUntil debounces answer submission while a transition settles
	BusyUntil time.Time `json:"busyUntil,omitempty"`

	// AnalyzingUntil gates the ANALYZING to RESULT transition
	AnalyzingUntil time.Time `json:"analyzingUntil,omitempty"`

	Scores ScoreTally `json:"scores"`

	// FromShare marks sessions reconstructed from a shared result link;
	// resetting such a session discards it instead of rewinding it.
	FromShare bool `json:"fromShare,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CurrentQuestion returns the question at the session position, or nil when
// no quiz is active or the position is out of range
func (s *QuizSession) CurrentQuestion() *Question {
	if s.Position < 0 || s.Position >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Position]
}
