package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"theinsight/internal/config"
	"theinsight/internal/model"
	"theinsight/internal/quiz"
)

// NarrativeService produces the free-text elaboration of a result via the
// Gemini API. It never fails: any error degrades to a fixed fallback
// paragraph so the result screen is never blocked.
type NarrativeService struct {
	config *config.AIConfig
	client *http.Client
}

// NewNarrativeService creates a narrative service from the env config
func NewNarrativeService() *NarrativeService {
	cfg := config.DefaultAIConfig()
	return &NarrativeService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Elaborate returns a short narrative for the tally and demographic tags
func (s *NarrativeService) Elaborate(ctx context.Context, tally model.ScoreTally, age model.AgeGroup, gender model.Gender) string {
	if !s.config.IsEnabled() {
		return s.fallbackNarrative(tally)
	}

	prompt := s.buildNarrativePrompt(tally, age, gender)
	text, err := s.callGemini(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return s.fallbackNarrative(tally)
	}
	return strings.TrimSpace(text)
}

func (s *NarrativeService) buildNarrativePrompt(tally model.ScoreTally, age model.AgeGroup, gender model.Gender) string {
	key := quiz.Classify(tally)
	var b strings.Builder
	b.WriteString("You are writing for a DISC self-assessment result page.\n")
	fmt.Fprintf(&b, "Scores: D=%d I=%d S=%d C=%d. Classified profile: %s.\n", tally.D, tally.I, tally.S, tally.C, key)
	fmt.Fprintf(&b, "Audience: age group %s", age)
	if gender != "" {
		fmt.Fprintf(&b, ", gender %s", gender)
	}
	b.WriteString(".\n")
	b.WriteString("Write one warm, specific paragraph (3-4 sentences) elaborating on this ")
	b.WriteString("behavioral profile for this audience. Plain text only, no headings, no lists.")
	return b.String()
}

// fallbackNarrative is the static degradation keyed on the dominant type
func (s *NarrativeService) fallbackNarrative(tally model.ScoreTally) string {
	key := quiz.Classify(tally)
	switch key.First {
	case model.TypeD:
		return "Your answers lean decisive: you set direction quickly and feel most alive when a goal is in motion. Watch the pace you set for others, and the results will follow."
	case model.TypeI:
		return "Your answers lean expressive: people and momentum energize you, and ideas grow the moment you say them out loud. Pair that spark with follow-through and little is out of reach."
	case model.TypeS:
		return "Your answers lean steady: you bring calm, patience, and loyalty that others quietly depend on. Remember your own needs count as much as everyone else's."
	default:
		return "Your answers lean precise: you trust evidence, notice what others miss, and hold work to a high standard. Share the reasoning behind that standard and people will meet it."
	}
}

func (s *NarrativeService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
