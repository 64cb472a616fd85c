package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"summary-pdf-service/internal/domain"
	"summary-pdf-service/pkg/errors"
)

// Mock pipeline service for handler testing
type MockSummaryService struct {
	report *domain.SummaryReport
	err    error
	calls  int
}

func (m *MockSummaryService) Summarize(ctx context.Context, req *domain.SummarizeRequest) (*domain.SummaryReport, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func newTestHandler(service *MockSummaryService) *SummaryHandler {
	return NewSummaryHandler(service, NewMockHandlerLogger(), 5*time.Second)
}

func postSummarize(t *testing.T, h *SummaryHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Summarize(rr, req)
	return rr
}

func TestSummaryHandler_Success(t *testing.T) {
	service := &MockSummaryService{
		report: &domain.SummaryReport{
			Success:       true,
			CloudinaryURL: "https://res.cloudinary.com/demo/raw/upload/summaries/summary_abc",
			PublicID:      "summaries/summary_abc",
			Format:        "pdf",
			Bytes:         2048,
			Message:       "Summary generated and uploaded successfully",
		},
	}
	h := newTestHandler(service)

	body, _ := json.Marshal(domain.SummarizeRequest{
		Content: "Quarterly results improved",
		Metadata: &domain.DocumentMetadata{
			Title: "Quarterly Report",
		},
	})
	rr := postSummarize(t, h, body)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var report domain.SummaryReport
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !report.Success {
		t.Error("expected success to be true")
	}
	if report.CloudinaryURL == "" {
		t.Error("expected non-empty cloudinary_url")
	}
	if report.Format != "pdf" {
		t.Errorf("expected format pdf, got %s", report.Format)
	}
	if report.Bytes != 2048 {
		t.Errorf("expected bytes 2048, got %d", report.Bytes)
	}
}

func TestSummaryHandler_ValidationFailure(t *testing.T) {
	service := &MockSummaryService{
		err: errors.NewValidationError("content is required and must not be empty"),
	}
	h := newTestHandler(service)

	body, _ := json.Marshal(domain.SummarizeRequest{Content: ""})
	rr := postSummarize(t, h, body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var failure struct {
		Success bool `json:"success"`
		Error   struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &failure); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if failure.Success {
		t.Error("expected success to be false")
	}
	if failure.Error.Type != "validation" {
		t.Errorf("expected validation error type, got %s", failure.Error.Type)
	}
}

func TestSummaryHandler_UpstreamFailure(t *testing.T) {
	service := &MockSummaryService{
		err: errors.NewUpstreamError(errors.BackendStorage, "upload failed", nil),
	}
	h := newTestHandler(service)

	body, _ := json.Marshal(domain.SummarizeRequest{Content: "some text"})
	rr := postSummarize(t, h, body)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}

	var failure struct {
		Success bool `json:"success"`
		Error   struct {
			Type    string `json:"type"`
			Details string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &failure); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if failure.Success {
		t.Error("expected success to be false")
	}
	if failure.Error.Details != errors.BackendStorage {
		t.Errorf("expected failing backend in details, got %s", failure.Error.Details)
	}
}

func TestSummaryHandler_MalformedJSON(t *testing.T) {
	service := &MockSummaryService{}
	h := newTestHandler(service)

	rr := postSummarize(t, h, []byte(`{"content": `))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if service.calls != 0 {
		t.Errorf("expected pipeline not to be called for malformed body, got %d calls", service.calls)
	}
}
