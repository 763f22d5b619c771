// Package handler exposes the scoring engine over a small JSON API.
//
// This file implements the scoring endpoints: single-checklist scoring,
// bulk recalculation, CSV export, and checklist version listing. The API
// never stores anything; callers submit a checklist snapshot and receive
// the computed report.
package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
	"github.com/DukeRupert/roadworthy/internal/service"
	"github.com/DukeRupert/roadworthy/internal/source"
)

// =============================================================================
// Request/Response Types
// =============================================================================

// ScoreRequest is the body of POST /api/score: a checklist document plus
// the final flag.
type ScoreRequest struct {
	source.Document
	Final bool `json:"final"`
}

// RecalculateRequest is the body of POST /api/recalculate.
type RecalculateRequest struct {
	InspectionIDs []string `json:"inspectionIds"`
}

// ChecklistInfo describes one registered checklist version.
type ChecklistInfo struct {
	Version    string `json:"version"`
	Name       string `json:"name"`
	PointCount int    `json:"pointCount"`
}

// =============================================================================
// Handler
// =============================================================================

// ScoreHandler serves the scoring API.
type ScoreHandler struct {
	scoring service.ScoringService
	catalog *registry.Catalog
	logger  *slog.Logger
}

// NewScoreHandler creates a ScoreHandler.
func NewScoreHandler(scoring service.ScoringService, catalog *registry.Catalog, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{
		scoring: scoring,
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers the scoring API routes. Unmatched paths get a
// JSON 404 instead of the ServeMux plain-text default.
func (h *ScoreHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/score", h.Score)
	mux.HandleFunc("POST /api/recalculate", h.Recalculate)
	mux.HandleFunc("GET /api/export.csv", h.ExportCSV)
	mux.HandleFunc("GET /api/checklists", h.Checklists)
	mux.HandleFunc("/", h.NotFound)
}

// NotFound is the fallback handler for unmatched routes.
func (h *ScoreHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	NotFoundResponse(w, r, h.logger)
}

// Score evaluates one submitted checklist snapshot.
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	const op = "handler.score"

	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "request body is not valid JSON"))
		return
	}

	checklist, meta, err := req.Materialize(h.catalog)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	rpt, err := h.scoring.Score(r.Context(), checklist, *meta, req.Final)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rpt)
}

// Recalculate re-scores a batch of stored inspections.
func (h *ScoreHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	const op = "handler.recalculate"

	var req RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "request body is not valid JSON"))
		return
	}
	if len(req.InspectionIDs) == 0 {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "inspectionIds must not be empty"))
		return
	}

	results, err := h.scoring.Recalculate(r.Context(), req.InspectionIDs)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	// Partial failures are structured data, not an HTTP error.
	out := make(map[string]interface{}, len(results))
	for id, item := range results {
		if item.Err != nil {
			out[id] = map[string]interface{}{
				"error": map[string]string{
					"code":    domain.ErrorCode(item.Err),
					"message": domain.ErrorMessage(item.Err),
				},
			}
			continue
		}
		out[id] = map[string]interface{}{"report": item.Report}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": out})
}

// ExportCSV streams the summary table for the requested inspections.
func (h *ScoreHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	const op = "handler.export_csv"

	raw := r.URL.Query().Get("ids")
	if raw == "" {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "query parameter 'ids' is required"))
		return
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	// Build the export in memory first so a failure still produces a JSON
	// error instead of an empty 200 with CSV headers.
	var buf bytes.Buffer
	if err := h.scoring.ExportCSV(r.Context(), ids, &buf); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inspections.csv"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("CSV export write failed", "error", err.Error(), "op", op)
	}
}

// Checklists lists the registered checklist versions.
func (h *ScoreHandler) Checklists(w http.ResponseWriter, r *http.Request) {
	versions := h.scoring.Versions()
	infos := make([]ChecklistInfo, 0, len(versions))
	for _, v := range versions {
		reg, err := h.catalog.Get(v)
		if err != nil {
			continue
		}
		infos = append(infos, ChecklistInfo{
			Version:    reg.Version(),
			Name:       reg.Name(),
			PointCount: reg.Len(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"checklists": infos})
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
