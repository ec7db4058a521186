package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/fitcheck/internal/category"
	"github.com/dotcommander/fitcheck/internal/cue"
	"github.com/dotcommander/fitcheck/internal/garment"
	"github.com/dotcommander/fitcheck/internal/input"
	"github.com/dotcommander/fitcheck/internal/types"
)

type scorecardRequest struct {
	Garment types.GarmentMeasurements `yaml:"garment"`
	Size    string                    `yaml:"size"`
	User    types.UserMeasurements    `yaml:"user"`
}

type errorResponse struct {
	Error   string                `json:"error"`
	Details []cue.ValidationError `json:"details,omitempty"`
}

// measurementResponse is one entry of the explainer catalog.
type measurementResponse struct {
	Dimension string `json:"dimension"`
	garment.Explanation
	Categories []types.FitCategory `json:"categories"`
}

// requestError is a client error with optional schema details.
type requestError struct {
	msg     string
	details []cue.ValidationError
}

func (e *requestError) Error() string { return e.msg }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScorecard(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r, true)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	start := time.Now()
	result := s.evaluator.Evaluate(req.Garment, req.Size, req.User)
	s.metrics.ObserveScorecards("single", time.Since(start), result)

	w.Header().Set(ScorecardIDHeader, s.newID())
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleScorecardAll(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r, false)
	if err != nil {
		s.badRequest(w, err)
		return
	}

	start := time.Now()
	results := s.evaluator.EvaluateAll(req.Garment, req.User)
	s.metrics.ObserveScorecards("all", time.Since(start), results...)

	w.Header().Set(ScorecardIDHeader, s.newID())
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	out := make([]measurementResponse, 0, len(category.Dimensions))
	for _, dim := range category.Dimensions {
		if m, ok := measurement(dim); ok {
			out = append(out, m)
		}
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleMeasurement(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	m, ok := measurement(key)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("unknown measurement: %s", key))
		return
	}
	s.respondJSON(w, http.StatusOK, m)
}

func measurement(dim string) (measurementResponse, bool) {
	e, ok := garment.Explain(dim)
	if !ok {
		return measurementResponse{}, false
	}
	return measurementResponse{
		Dimension:   dim,
		Explanation: e,
		Categories:  category.Catalog(dim),
	}, true
}

// decodeRequest reads the body, checks the garment and user parts against
// their schemas and decodes the typed request.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, needSize bool) (*scorecardRequest, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &requestError{msg: fmt.Sprintf("reading body: %v", err)}
	}

	doc, err := input.Decode(raw)
	if err != nil {
		return nil, &requestError{msg: err.Error()}
	}

	parts := []struct {
		key      string
		validate func(map[string]any) ([]cue.ValidationError, error)
	}{
		{"garment", s.validator.ValidateGarment},
		{"user", s.validator.ValidateUser},
	}
	for _, p := range parts {
		data, ok := doc.Data[p.key].(map[string]any)
		if !ok {
			return nil, &requestError{msg: fmt.Sprintf("missing %s object", p.key)}
		}
		verrs, err := p.validate(data)
		if err != nil {
			return nil, err
		}
		if len(verrs) > 0 {
			return nil, &requestError{msg: "invalid " + p.key, details: verrs}
		}
	}

	var req scorecardRequest
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return nil, &requestError{msg: fmt.Sprintf("decoding request: %v", err)}
	}
	if needSize && req.Size == "" {
		return nil, &requestError{msg: "size is required"}
	}
	return &req, nil
}

func (s *Server) respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Warn("writing response", nil)
	}
}

func (s *Server) respondError(w http.ResponseWriter, code int, err error) {
	resp := errorResponse{Error: err.Error()}
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		resp.Details = reqErr.details
	}
	s.respondJSON(w, code, resp)
}

// badRequest answers 400 for client errors. Anything else came from the
// validator itself and is a 500.
func (s *Server) badRequest(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if !errors.As(err, &reqErr) {
		s.logger.WithError(err).Error("validating request", nil)
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	s.respondError(w, http.StatusBadRequest, err)
}
