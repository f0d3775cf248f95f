// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fpgrowth/internal/mining"
	"github.com/tomtom215/fpgrowth/internal/models"
	"github.com/tomtom215/fpgrowth/internal/validation"
)

// maxMineBodyBytes bounds the size of a mine request body.
const maxMineBodyBytes = 32 << 20

// MiningService is the subset of *mining.Service used by the handlers.
type MiningService interface {
	Mine(ctx context.Context, req mining.Request) (*models.Run, error)
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]models.RunSummary, error)
	DeleteRun(ctx context.Context, id string) error
	StoreEnabled() bool
}

// Handler serves the API endpoints.
type Handler struct {
	svc     MiningService
	version string
	started time.Time
}

// NewHandler creates a handler for svc. version is reported by Health.
func NewHandler(svc MiningService, version string) *Handler {
	return &Handler{svc: svc, version: version, started: time.Now()}
}

type listRunsRequest struct {
	Limit int `validate:"min=1,max=500"`
}

// Mine handles POST /api/v1/mine.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req mining.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMineBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, models.ErrCodeValidation, "Request body too large", nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON request body", nil)
		return
	}

	run, err := h.svc.Mine(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, run, start, run.Cached)
}

// ListRuns handles GET /api/v1/runs.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := listRunsRequest{Limit: getIntParam(r, "limit", 20)}
	if verr := validation.ValidateStruct(&req); verr != nil {
		h.respondServiceError(w, r, verr)
		return
	}

	runs, err := h.svc.ListRuns(r.Context(), req.Limit)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, runs, start, false)
}

// GetRun handles GET /api/v1/runs/{id}.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	run, err := h.svc.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, run, start, false)
}

// DeleteRun handles DELETE /api/v1/runs/{id}.
func (h *Handler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRun(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:       "healthy",
		Version:      h.version,
		StoreEnabled: h.svc.StoreEnabled(),
		Uptime:       int64(time.Since(h.started).Seconds()),
	}, time.Now(), false)
}

// respondServiceError maps service and validation errors to responses.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: verr.Message(),
			Details: verr.Details(),
		}, nil)
	case errors.Is(err, mining.ErrRunNotFound):
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Run not found", nil)
	case errors.Is(err, mining.ErrNoStore):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUnavailable, "Run persistence is disabled", nil)
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error", err)
	}
}
