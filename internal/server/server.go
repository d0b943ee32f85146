// Package server exposes the tutoring engine over HTTP: one chat
// endpoint, one recommendations endpoint and a health check.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/mantasj/gidas/internal/recommend"
	"github.com/mantasj/gidas/internal/tutor"
)

// Chatter handles one user chat turn.
type Chatter interface {
	Chat(ctx context.Context, req tutor.ChatRequest) (string, error)
}

// Recommender produces study recommendations.
type Recommender interface {
	Recommendations(ctx context.Context, userID, subjectID string) []recommend.Recommendation
}

// Server wires the tutoring services into an HTTP router.
type Server struct {
	chat      Chatter
	recommend Recommender
	log       *logrus.Logger
}

// New creates a Server.
func New(chat Chatter, recommender Recommender, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{chat: chat, recommend: recommender, log: log}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(s.log))

	r.HandleFunc("/api/ai/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/ai/recommendations/{userId}", s.handleRecommendations).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return r
}

type chatRequest struct {
	UserID      string `json:"userId"`
	Message     string `json:"message"`
	Mode        string `json:"mode"`
	SubjectName string `json:"subjectName"`
	SubjectID   string `json:"subjectId"`
	Topic       string `json:"topic"`
	Grade       int    `json:"grade"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	defer r.Body.Close()

	response, err := s.chat.Chat(r.Context(), tutor.ChatRequest{
		UserID:      req.UserID,
		Message:     req.Message,
		Mode:        req.Mode,
		SubjectName: req.SubjectName,
		SubjectID:   req.SubjectID,
		Topic:       req.Topic,
		Grade:       req.Grade,
	})
	if err != nil {
		var invalid *tutor.ErrInvalidInput
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Error()})
			return
		}

		var unavailable *tutor.ErrTutorUnavailable
		if errors.As(err, &unavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: unavailable.Message})
			return
		}

		s.log.WithError(err).Error("chat failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: response})
}

type recommendationsResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	subjectID := r.URL.Query().Get("subjectId")

	recs := s.recommend.Recommendations(r.Context(), userID, subjectID)
	writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: recs})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
