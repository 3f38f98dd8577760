package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON_WritesBarePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, []int{1, 2})

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[1,2]" {
		t.Errorf("expected [1,2], got %s", body)
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBody   string
	}{
		{name: "bad request", write: func(w http.ResponseWriter) { BadRequest(w, "title is required") }, wantStatus: http.StatusBadRequest, wantBody: `{"error":"title is required"}`},
		{name: "not found", write: NotFound, wantStatus: http.StatusNotFound, wantBody: `{}`},
		{name: "internal", write: func(w http.ResponseWriter) { InternalError(w, "Failed to save note") }, wantStatus: http.StatusInternalServerError, wantBody: `{"error":"Failed to save note"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if body := strings.TrimSpace(rec.Body.String()); body != tt.wantBody {
				t.Errorf("expected %s, got %s", tt.wantBody, body)
			}
		})
	}
}
