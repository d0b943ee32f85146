package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mantasj/gidas/internal/llm"
	"github.com/mantasj/gidas/internal/store"
)

// Recommendation is one study suggestion for the student.
type Recommendation struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Subject       string `json:"subject,omitempty"`
	Priority      string `json:"priority,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// Config holds recommendation generation tuning.
type Config struct {
	Sampling llm.Sampling
}

// DefaultConfig returns the production recommendation configuration.
func DefaultConfig() Config {
	return Config{
		Sampling: llm.Sampling{
			Temperature:      0.7,
			MaxTokens:        1000,
			TopP:             0.9,
			FrequencyPenalty: 0.3,
			PresencePenalty:  0.3,
		},
	}
}

// Service generates personalized study recommendations. It never fails
// outward: any internal error degrades to the deterministic local list.
type Service struct {
	provider llm.Provider
	progress store.ProgressRepo
	cfg      Config
	log      *logrus.Logger
}

// NewService creates a recommendation service.
func NewService(provider llm.Provider, progress store.ProgressRepo, cfg Config, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{provider: provider, progress: progress, cfg: cfg, log: log}
}

// Recommendations asks the model for 3-5 study recommendations based on
// the user's progress. Provider failures, unparseable output and store
// outages all fall back to Fallback.
func (s *Service) Recommendations(ctx context.Context, userID, subjectID string) []Recommendation {
	summary, err := s.progress.UserProgressSummary(ctx, userID, subjectID)
	if err != nil {
		s.log.WithError(err).Warn("progress summary lookup failed, using fallback recommendations")
		return Fallback(nil)
	}

	ctx = llm.WithPurpose(ctx, "recommendations")
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:   recommendationSystemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: buildRecommendationMessage(summary)}},
		Sampling: s.cfg.Sampling,
	})
	if err != nil {
		s.log.WithError(err).Warn("recommendation completion failed, using fallback")
		return Fallback(summary)
	}

	recs, err := parseRecommendations(resp.Content)
	if err != nil {
		s.log.WithError(err).Warn("unparseable recommendation response, using fallback")
		return Fallback(summary)
	}
	return recs
}

const recommendationSystemPrompt = `Tu esi mokymosi planavimo asistentas Lietuvos vidurinės mokyklos mokiniams. Pagal mokinio pažangą sudarai konkrečias mokymosi rekomendacijas.

Atsakyk TIK JSON formatu, be jokio kito teksto:
{
  "recommendations": [
    {
      "type": "practice | review | focus",
      "title": "trumpas pavadinimas",
      "description": "1-2 sakinių paaiškinimas",
      "subject": "dalyko pavadinimas",
      "priority": "high | medium | low",
      "estimatedTime": "pvz. 30 min",
      "reason": "kodėl ši rekomendacija"
    }
  ]
}
Pateik 3-5 rekomendacijas.`

func buildRecommendationMessage(summary *store.ProgressSummary) string {
	var b strings.Builder

	b.WriteString("Mokinio pažanga:\n")
	if len(summary.Subjects) == 0 {
		b.WriteString("Dalykų dar nėra.\n")
	}
	for _, s := range summary.Subjects {
		fmt.Fprintf(&b, "- %s: %.0f%%\n", s.Name, s.ProgressPercentage)
	}
	fmt.Fprintf(&b, "Bendra pažanga: %.0f%%\n", summary.OverallProgress)

	if len(summary.WeakAreas) > 0 {
		fmt.Fprintf(&b, "Silpnosios vietos: %s\n", strings.Join(summary.WeakAreas, ", "))
	}

	b.WriteString("\nSudaryk mokymosi rekomendacijas šiam mokiniui.")
	return b.String()
}

type recommendationPayload struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// parseRecommendations extracts, validates and decodes the model's JSON.
func parseRecommendations(content string) ([]Recommendation, error) {
	raw, ok := ExtractJSON(content)
	if !ok {
		return nil, fmt.Errorf("no JSON object in response")
	}

	if err := validatePayload(raw); err != nil {
		return nil, err
	}

	var payload recommendationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return payload.Recommendations, nil
}

// focusThreshold is the progress percentage below which a subject earns
// a fallback focus recommendation.
const focusThreshold = 50

// maxFocusEntries caps how many focus entries the fallback emits.
const maxFocusEntries = 2

// Fallback is the deterministic local recommendation list: one generic
// entry plus up to two focus entries for subjects below 50% progress,
// in subject list order.
func Fallback(summary *store.ProgressSummary) []Recommendation {
	recs := []Recommendation{{
		Type:          "practice",
		Title:         "Mokykis reguliariai",
		Description:   "Skirk bent 30 minučių kasdien — trumpos, dažnos sesijos veikia geriau už ilgas ir retas.",
		Priority:      "medium",
		EstimatedTime: "30 min",
		Reason:        "Pastovus ritmas yra patikimiausias būdas daryti pažangą.",
	}}

	if summary == nil {
		return recs
	}

	added := 0
	for _, s := range summary.Subjects {
		if added >= maxFocusEntries {
			break
		}
		if s.ProgressPercentage >= focusThreshold {
			continue
		}
		recs = append(recs, Recommendation{
			Type:          "focus",
			Title:         fmt.Sprintf("Sustiprink %s žinias", s.Name),
			Description:   fmt.Sprintf("Tavo %s pažanga — %.0f%%. Verta skirti šiam dalykui daugiau laiko.", s.Name, s.ProgressPercentage),
			Subject:       s.Name,
			Priority:      "high",
			EstimatedTime: "45 min",
			Reason:        "Pažanga žemiau 50% rodo, kad dalykui reikia papildomo dėmesio.",
		})
		added++
	}

	return recs
}
