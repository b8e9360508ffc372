package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chouette-app/chouette-backend/internal/observability/metrics"
	"github.com/chouette-app/chouette-backend/internal/quota"
	"github.com/chouette-app/chouette-backend/internal/suggestion"
	"github.com/chouette-app/chouette-backend/pkg/logging"
)

// RefineStore persists refinement results. *suggestion.Store satisfies it.
type RefineStore interface {
	Save(ctx context.Context, orgID, userInput string, refined suggestion.Suggestion) (uuid.UUID, error)
	ListRecentForOrg(ctx context.Context, orgID string, limit int) ([]suggestion.StoredSuggestion, error)
}

// RefineHandler post-processes AI-generated date suggestions.
type RefineHandler struct {
	store        RefineStore
	limiter      *quota.Limiter
	metrics      *metrics.RefineMetrics
	logger       *logging.Logger
	historyLimit int
}

// RefineRequest is the JSON body of POST /api/suggestions/refine.
type RefineRequest struct {
	Suggestion suggestion.Suggestion `json:"suggestion"`
	Options    RefineOptions         `json:"options"`
}

// RefineOptions mirrors suggestion.Options without the injected clock.
type RefineOptions struct {
	UserInput           string                          `json:"userInput"`
	AllowedDates        []string                        `json:"allowedDates,omitempty"`
	ParsedTemporalInput *suggestion.ParsedTemporalInput `json:"parsedTemporalInput,omitempty"`
}

// RefineResponse is the JSON body returned on success.
type RefineResponse struct {
	Suggestion suggestion.Suggestion `json:"suggestion"`
	Context    string                `json:"context,omitempty"`
}

// NewRefineHandler creates the handler. Store, limiter and metrics are all
// optional; a nil value disables that concern.
func NewRefineHandler(store RefineStore, limiter *quota.Limiter, m *metrics.RefineMetrics, historyLimit int, logger *logging.Logger) *RefineHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &RefineHandler{
		store:        store,
		limiter:      limiter,
		metrics:      m,
		logger:       logger,
		historyLimit: historyLimit,
	}
}

// Refine handles POST /api/suggestions/refine.
func (h *RefineHandler) Refine(w http.ResponseWriter, r *http.Request) {
	orgID := strings.TrimSpace(r.Header.Get("X-Org-Id"))

	var req RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Options.UserInput) == "" {
		jsonError(w, "options.userInput is required", http.StatusBadRequest)
		return
	}

	if h.limiter.Enabled() && !h.limiter.Allow(r.Context(), orgID) {
		h.metrics.ObserveQuotaRejected()
		h.logger.Warn("daily quota exceeded", "org_id", orgID)
		jsonError(w, "daily refinement quota exceeded", http.StatusTooManyRequests)
		return
	}

	start := time.Now()
	refined := suggestion.Refine(req.Suggestion, suggestion.Options{
		UserInput:           req.Options.UserInput,
		AllowedDates:        req.Options.AllowedDates,
		ParsedTemporalInput: req.Options.ParsedTemporalInput,
	})
	tag := suggestion.ContextOf(req.Options.UserInput)
	h.metrics.ObserveRefine(tag, string(refined.Type), len(refined.TimeSlots), time.Since(start).Seconds())

	// Persistence is best effort: a storage failure never fails the response.
	if h.store != nil && orgID != "" {
		if _, err := h.store.Save(r.Context(), orgID, req.Options.UserInput, refined); err != nil {
			h.logger.Error("failed to persist refined suggestion", "org_id", orgID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, RefineResponse{Suggestion: refined, Context: tag})
}

// History handles GET /api/suggestions/history.
func (h *RefineHandler) History(w http.ResponseWriter, r *http.Request) {
	orgID := strings.TrimSpace(r.Header.Get("X-Org-Id"))
	if orgID == "" {
		jsonError(w, "missing X-Org-Id header", http.StatusBadRequest)
		return
	}
	if h.store == nil {
		jsonError(w, "history disabled", http.StatusServiceUnavailable)
		return
	}
	recs, err := h.store.ListRecentForOrg(r.Context(), orgID, h.historyLimit)
	if err != nil {
		h.logger.Error("failed to list refinement history", "org_id", orgID, "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []suggestion.StoredSuggestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": recs})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
