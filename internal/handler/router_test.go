package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestRouter(service *MockSummaryService) http.Handler {
	summaryHandler := NewSummaryHandler(service, NewMockHandlerLogger(), 5*time.Second)
	return NewRouter(summaryHandler)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&MockSummaryService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_SummarizeRoute(t *testing.T) {
	service := &MockSummaryService{
		report: nil,
		err:    nil,
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(`{"content":"some text"}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if service.calls != 1 {
		t.Fatalf("expected pipeline to be called once, got %d", service.calls)
	}
}

func TestNewRouter_SummarizeRejectsGet(t *testing.T) {
	router := newTestRouter(&MockSummaryService{})

	req := httptest.NewRequest(http.MethodGet, "/summarize", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
