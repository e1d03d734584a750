/*
handlers.go - HTTP API handlers for the settlement calculator

PURPOSE:
  Exposes the rescission engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Calculations:
    POST   /api/calculations        Compute and store a settlement
    GET    /api/calculations        List stored calculations
    GET    /api/calculations/{id}   Get a stored calculation
    DELETE /api/calculations/{id}   Delete a stored calculation

  Scenarios:
    GET    /api/scenarios           List preset demo scenarios
    POST   /api/scenarios/{id}/run  Compute a preset without storing

  Health:
    GET    /api/health              Liveness probe

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Calculation or scenario not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Response data structures
  - scenarios.go: Demo scenario presets
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warp/rescisao-engine/factory"
	"github.com/warp/rescisao-engine/rescisao"
	"github.com/warp/rescisao-engine/statement"
	"github.com/warp/rescisao-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CreateCalculation computes a settlement and stores it in the history.
// POST /api/calculations
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req factory.CalculationJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	input, err := factory.ParseInput(req)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := rescisao.Calculate(input)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	dto := CalculationDTO{
		ID:           uuid.NewString(),
		EmployeeName: input.EmployeeName,
		Result:       toResultDTO(result),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	inputJSON, _ := json.Marshal(req)
	resultJSON, _ := json.Marshal(dto.Result)
	rec := sqlite.CalculationRecord{
		ID:              dto.ID,
		EmployeeName:    input.EmployeeName,
		TerminationType: string(input.TerminationType),
		NetTotal:        dto.Result.NetTotal,
		InputJSON:       string(inputJSON),
		ResultJSON:      string(resultJSON),
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.Store.SaveCalculation(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store calculation", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto)
}

// ListCalculations returns stored calculation summaries, newest first.
// GET /api/calculations?employee=Name
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	employee := r.URL.Query().Get("employee")

	records, err := h.Store.ListCalculations(r.Context(), employee)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list calculations", err)
		return
	}

	dtos := make([]CalculationSummaryDTO, len(records))
	for i, rec := range records {
		dtos[i] = CalculationSummaryDTO{
			ID:              rec.ID,
			EmployeeName:    rec.EmployeeName,
			TerminationType: rec.TerminationType,
			NetTotal:        rec.NetTotal,
			CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetCalculation returns one stored calculation with its full statement.
// GET /api/calculations/{id}
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.GetCalculation(r.Context(), id)
	if err != nil {
		if statement.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Calculation not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get calculation", err)
		return
	}

	var result ResultDTO
	if err := json.Unmarshal([]byte(rec.ResultJSON), &result); err != nil {
		writeError(w, http.StatusInternalServerError, "Corrupt stored result", err)
		return
	}

	writeJSON(w, http.StatusOK, CalculationDTO{
		ID:           rec.ID,
		EmployeeName: rec.EmployeeName,
		Result:       result,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	})
}

// DeleteCalculation removes a stored calculation.
// DELETE /api/calculations/{id}
func (h *Handler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteCalculation(r.Context(), id); err != nil {
		if statement.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Calculation not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete calculation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeValidationError maps engine validation failures to 400 with the
// offending field, everything else to 500.
func writeValidationError(w http.ResponseWriter, err error) {
	var verr *statement.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid calculation input",
			Field:   verr.Field,
			Details: verr.Reason,
		})
		return
	}
	if statement.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "Invalid calculation input", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Calculation failed", err)
}
