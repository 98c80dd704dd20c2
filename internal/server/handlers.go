package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/core"
	"newsdesk/internal/pipeline"
)

// HealthResponse is the /health payload
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleNews handles GET /news: fetch stage only, generic query.
// This is the one route where a failure surfaces as a hard HTTP 500,
// because without stories nothing downstream is meaningful.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	payload, err := s.pipeline.Stories(r.Context(), "")
	if err != nil {
		s.respondFetchError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, core.SuccessEnvelope(payload))
}

// handleTopNews handles GET /news/top: fetch with the alternate
// normalization path, then topic selection.
func (s *Server) handleTopNews(w http.ResponseWriter, r *http.Request) {
	payload, err := s.pipeline.TopNews(r.Context())
	if err != nil {
		if errors.Is(err, pipeline.ErrFetchFailed) {
			s.respondFetchError(w, err)
			return
		}
		// Degraded selection: error envelope, fetched stories kept
		if payload.TopStories == nil {
			payload.TopStories = []core.StoryRecord{}
		}
		if payload.Analysis.SelectedTopics == nil {
			payload.Analysis.SelectedTopics = []core.Topic{}
		}
		s.respondJSON(w, http.StatusOK, core.ErrorEnvelope(payload, err))
		return
	}

	s.respondJSON(w, http.StatusOK, core.SuccessEnvelope(payload))
}

// handleNewsAnalysis handles GET /news/analysis: fetch then topic selection.
func (s *Server) handleNewsAnalysis(w http.ResponseWriter, r *http.Request) {
	s.respondAnalysis(w, r, "")
}

// categoryRequest is the POST /news/analysis/category body
type categoryRequest struct {
	Category string `json:"category"`
}

// handleAnalysisByCategory handles POST /news/analysis/category: the caller
// supplies a category phrase used as the search query.
func (s *Server) handleAnalysisByCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, err)
		return
	}

	s.respondAnalysis(w, r, req.Category)
}

// respondAnalysis is the shared analysis path. A selection failure becomes
// an error envelope with an empty topic list, never a raw 500.
func (s *Server) respondAnalysis(w http.ResponseWriter, r *http.Request, category string) {
	analysis, err := s.pipeline.Analysis(r.Context(), category)
	if err != nil {
		if errors.Is(err, pipeline.ErrFetchFailed) {
			s.respondFetchError(w, err)
			return
		}
		empty := core.TopicAnalysis{SelectedTopics: []core.Topic{}}
		s.respondJSON(w, http.StatusOK, core.ErrorEnvelope(empty, err))
		return
	}

	s.respondJSON(w, http.StatusOK, core.SuccessEnvelope(analysis))
}

// handleNewsExperts handles GET /news/experts: the full chain, expert
// discovery in batch mode.
func (s *Server) handleNewsExperts(w http.ResponseWriter, r *http.Request) {
	report, err := s.pipeline.ExpertsFromNews(r.Context())
	if err != nil {
		if errors.Is(err, pipeline.ErrFetchFailed) {
			s.respondFetchError(w, err)
			return
		}
		empty := core.ExpertReport{ExpertRecommendations: []core.ExpertRecommendation{}}
		s.respondJSON(w, http.StatusOK, core.ErrorEnvelope(empty, err))
		return
	}

	s.respondReport(w, report)
}

// handleExpertsForTopic handles POST /news/experts/topic: single-topic
// expert discovery against a caller-supplied topic.
func (s *Server) handleExpertsForTopic(w http.ResponseWriter, r *http.Request) {
	var topic core.Topic
	if err := json.NewDecoder(r.Body).Decode(&topic); err != nil {
		s.respondBadRequest(w, err)
		return
	}

	s.respondReport(w, s.pipeline.ExpertsForTopic(r.Context(), topic))
}

// handleGenerateEmail handles POST /email/generate. The drafter degrades
// into a sendable fallback template internally, so this route always
// returns a success-shaped payload.
func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req core.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, err)
		return
	}

	draft := s.pipeline.DraftEmail(r.Context(), req)
	s.respondJSON(w, http.StatusOK, core.SuccessEnvelope(draft))
}

// simpleEmailRequest is the POST /format-simple-email body
type simpleEmailRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Name    string `json:"name"`
}

// handleFormatSimpleEmail handles POST /format-simple-email.
func (s *Server) handleFormatSimpleEmail(w http.ResponseWriter, r *http.Request) {
	var req simpleEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, err)
		return
	}

	result := s.pipeline.FormatSimpleEmail(r.Context(), req.Subject, req.Body, req.Name)
	s.respondJSON(w, http.StatusOK, core.SuccessEnvelope(result))
}

// respondReport wraps an expert report, marking the envelope as an error
// when the report carries placeholder entries so callers can tell degraded
// responses from genuine recommendations.
func (s *Server) respondReport(w http.ResponseWriter, report core.ExpertReport) {
	for _, rec := range report.ExpertRecommendations {
		for _, expert := range rec.Experts {
			if expert.Error {
				s.respondJSON(w, http.StatusOK, core.ErrorEnvelope(report, errors.New(expert.Expertise)))
				return
			}
		}
	}

	s.respondJSON(w, http.StatusOK, core.SuccessEnvelope(report))
}

// respondFetchError surfaces a fetch-stage failure as HTTP 500 with an
// envelope-shaped body.
func (s *Server) respondFetchError(w http.ResponseWriter, err error) {
	env := core.Envelope{
		Output:     pipeline.NewsPayload{NewsStories: []core.StoryRecord{}},
		Status:     core.StatusError,
		StatusCode: http.StatusInternalServerError,
		Error:      err.Error(),
	}
	s.respondJSON(w, http.StatusInternalServerError, env)
}

// respondBadRequest rejects an undecodable request body.
func (s *Server) respondBadRequest(w http.ResponseWriter, err error) {
	env := core.Envelope{
		Output:     struct{}{},
		Status:     core.StatusError,
		StatusCode: http.StatusBadRequest,
		Error:      "invalid request body: " + err.Error(),
	}
	s.respondJSON(w, http.StatusBadRequest, env)
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}
