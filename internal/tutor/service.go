package tutor

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mantasj/gidas/internal/curriculum"
	"github.com/mantasj/gidas/internal/llm"
	"github.com/mantasj/gidas/internal/store"
)

// Localized failure messages shown to the student when the completion
// provider fails.
const (
	msgUnauthorized = "AI paslaugos prisijungimo duomenys neteisingi. Kreipkitės į administratorių."
	msgRateLimited  = "AI tutorius šiuo metu perkrautas. Pabandykite po kelių akimirkų."
	msgUpstream     = "AI paslaugos sutrikimas. Pabandykite dar kartą po kelių akimirkų."
	msgTimeout      = "Užklausa truko per ilgai. Pabandykite dar kartą."
	msgGeneric      = "AI tutorius šiuo metu nepasiekiamas. Pabandykite vėliau."
)

// Service assembles the conversation context for one user turn, invokes
// the completion provider and persists the exchange.
type Service struct {
	provider llm.Provider
	progress store.ProgressRepo
	chat     store.ChatRepo
	personas curriculum.PersonaTable
	courses  curriculum.Table
	cfg      Config
	log      *logrus.Logger
}

// NewService creates the assembler. The persona and curriculum tables
// are injected so subjects and grades can be extended without code
// changes.
func NewService(provider llm.Provider, progress store.ProgressRepo, chat store.ChatRepo, personas curriculum.PersonaTable, courses curriculum.Table, cfg Config, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		provider: provider,
		progress: progress,
		chat:     chat,
		personas: personas,
		courses:  courses,
		cfg:      cfg,
		log:      log,
	}
}

// Chat handles one user turn: resolve grade, gather progress and
// history, select the system prompt, call the provider once and persist
// the exchange. Store read failures degrade to empty context; a persist
// failure after a successful completion is logged and swallowed so the
// student still gets their answer.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if req.UserID == "" {
		return "", &ErrInvalidInput{Field: "userId"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return "", &ErrInvalidInput{Field: "message"}
	}

	mode := ParseMode(req.Mode)
	grade := s.resolveGrade(ctx, req)
	summary := s.progressSummary(ctx, req.UserID, req.SubjectID)
	history := s.recentHistory(ctx, req.UserID, req.SubjectID)

	var system string
	switch mode {
	case ModeTutor:
		persona := s.personas.Lookup(req.SubjectName)
		var block string
		if c, ok := s.courses.Lookup(req.SubjectName, grade); ok {
			block = c.Format()
		}
		system = buildTutorPrompt(persona, block, req.Topic, grade, summary)
	default:
		system = buildGuidePrompt(curriculum.GuidePersona(), summary)
	}

	messages := append(expandHistory(history), llm.Message{
		Role:    llm.RoleUser,
		Content: req.Message,
	})

	ctx = llm.WithPurpose(ctx, "chat")
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:   system,
		Messages: messages,
		Sampling: s.cfg.Sampling,
	})
	if err != nil {
		return "", classifyCompletionError(err)
	}

	if err := s.chat.AppendChatMessage(ctx, req.UserID, req.SubjectID, req.Message, resp.Content); err != nil {
		s.log.WithError(err).Warn("failed to persist chat exchange")
	}

	return resp.Content, nil
}

// resolveGrade prefers the explicit grade, then the subject row, then
// the configured default.
func (s *Service) resolveGrade(ctx context.Context, req ChatRequest) int {
	if req.Grade > 0 {
		return req.Grade
	}
	if req.SubjectID != "" {
		grade, ok, err := s.progress.SubjectGrade(ctx, req.SubjectID)
		if err != nil {
			s.log.WithError(err).Warn("subject grade lookup failed")
		} else if ok {
			return grade
		}
	}
	return s.cfg.DefaultGrade
}

// progressSummary degrades to an empty summary on store failure so a
// transient store outage never blocks the chat.
func (s *Service) progressSummary(ctx context.Context, userID, subjectID string) *store.ProgressSummary {
	summary, err := s.progress.UserProgressSummary(ctx, userID, subjectID)
	if err != nil {
		s.log.WithError(err).Warn("progress summary lookup failed")
		return &store.ProgressSummary{}
	}
	return summary
}

func (s *Service) recentHistory(ctx context.Context, userID, subjectID string) []store.Exchange {
	history, err := s.chat.RecentExchanges(ctx, userID, subjectID, s.cfg.HistoryLimit)
	if err != nil {
		s.log.WithError(err).Warn("chat history lookup failed")
		return nil
	}
	return history
}

// classifyCompletionError maps provider failures onto a single
// user-facing error with a localized message.
func classifyCompletionError(err error) error {
	message := msgGeneric

	var unauthorized *llm.ErrUnauthorized
	var rateLimit *llm.ErrRateLimit
	var unavailable *llm.ErrProviderUnavailable
	var timeout *llm.ErrTimeout

	switch {
	case errors.As(err, &unauthorized):
		message = msgUnauthorized
	case errors.As(err, &rateLimit):
		message = msgRateLimited
	case errors.As(err, &timeout):
		message = msgTimeout
	case errors.As(err, &unavailable):
		message = msgUpstream
	}

	return &ErrTutorUnavailable{Message: message, Err: err}
}
