// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"
)

// SummaryHandler handles summarization HTTP requests
type SummaryHandler struct {
	summaryService domain.SummaryService
	logger         domain.Logger
	timeout        time.Duration
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService domain.SummaryService, logger domain.Logger, timeout time.Duration) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
		timeout:        timeout,
	}
}

// Summarize handles POST /summarize. The external calls inside the pipeline
// run under a bounded deadline; expiry surfaces as an upstream failure.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req domain.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Rejected malformed request body", "error", err)
		writeFailure(w, errors.NewValidationError("invalid JSON request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report, err := h.summaryService.Summarize(ctx, &req)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
