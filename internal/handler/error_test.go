package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DukeRupert/roadworthy/internal/domain"
)

// =============================================================================
// Error Response Tests
// =============================================================================

func errorResponseFor(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	req := httptest.NewRequest("POST", "/api/score", nil)
	rec := httptest.NewRecorder()
	ErrorResponse(rec, req, logger, err)
	return rec
}

func TestErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{domain.EINVALID, http.StatusBadRequest},
		{domain.EUNKNOWN, http.StatusBadRequest},
		{domain.ENOTFOUND, http.StatusNotFound},
		{domain.ECONFLICT, http.StatusConflict},
		{domain.EINCOMPLETE, http.StatusUnprocessableEntity},
		{domain.ENOCRITICAL, http.StatusUnprocessableEntity},
		{domain.EINTERNAL, http.StatusInternalServerError},
		{"something_else", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ErrorCodeToHTTPStatus(tt.code); got != tt.want {
				t.Errorf("ErrorCodeToHTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestErrorResponse_Body(t *testing.T) {
	rec := errorResponseFor(t, domain.UnknownPoint("scoring.score", "brk-pads-front", "initial-160-v1"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Error.Code != domain.EUNKNOWN {
		t.Errorf("expected code %q, got %q", domain.EUNKNOWN, body.Error.Code)
	}
	if !strings.Contains(body.Error.Message, "brk-pads-front") {
		t.Errorf("message should name the offending point, got: %s", body.Error.Message)
	}
}

func TestErrorResponse_InternalErrorHidesDetails(t *testing.T) {
	// An internal error wrapping infrastructure details must not leak them.
	wrapped := &mockInfraError{message: "read /var/data/checklists/insp-7.json: permission denied"}
	rec := errorResponseFor(t, domain.Internal(wrapped, "source.dir_checklist", "failed to read checklist document"))

	body := rec.Body.String()
	if strings.Contains(body, "/var/data") {
		t.Errorf("response exposes filesystem path: %s", body)
	}
	if strings.Contains(body, "source.dir_checklist") {
		t.Errorf("response exposes internal operation: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Errorf("response should contain a generic message, got: %s", body)
	}
}

func TestErrorResponse_UnwrappedErrorReturnsGeneric(t *testing.T) {
	rec := errorResponseFor(t, &mockInfraError{message: "dial tcp 192.168.1.100:5432: connection refused"})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "192.168") {
		t.Errorf("response exposes raw error details: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Errorf("response should contain a generic message, got: %s", body)
	}
}

// mockInfraError simulates an infrastructure error for testing.
type mockInfraError struct {
	message string
}

func (e *mockInfraError) Error() string {
	return e.message
}
