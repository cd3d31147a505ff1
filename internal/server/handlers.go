package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wagewise/wagewise/internal/config"
	"github.com/wagewise/wagewise/internal/domain"
	"github.com/wagewise/wagewise/internal/profile"
)

// evaluateResponse wraps the result so an insufficient-input evaluation is
// an explicit null, not a 4xx: the caller shows an empty state.
type evaluateResponse struct {
	Result *domain.Result `json:"result"`
}

// saveProfileRequest is the body for POST /api/profiles.
type saveProfileRequest struct {
	Name     string            `json:"name"`
	Expenses map[string]string `json:"expenses"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.Logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEvaluate runs one evaluation over a raw form snapshot.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var form config.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := s.Engine.Evaluate(form.Input())
	s.writeJSON(w, http.StatusOK, evaluateResponse{Result: result})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	names, err := s.Registry.List(r.Context())
	if err != nil {
		s.Logger.Error("failed to list profiles", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"profiles": names})
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var req saveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	snapshot := config.Form{Expenses: req.Expenses}.Input().Expenses
	if err := s.Registry.Save(r.Context(), req.Name, snapshot); err != nil {
		if errors.Is(err, profile.ErrEmptyName) {
			s.writeError(w, http.StatusBadRequest, "profile name must not be empty")
			return
		}
		s.Logger.Error("failed to save profile", zap.String("name", req.Name), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	snapshot, err := s.Registry.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.Logger.Error("failed to load profile", zap.String("name", name), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]domain.ExpenseSet{"expenses": snapshot})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.Registry.Delete(r.Context(), name); err != nil {
		s.Logger.Error("failed to delete profile", zap.String("name", name), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
