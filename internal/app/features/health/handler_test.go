package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestServeHealth_OK(t *testing.T) {
	h := NewHandler(fakePinger{}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHealth(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["status"] != "ok" || resp["sheet"] != "ok" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestServeHealth_SheetDown(t *testing.T) {
	h := NewHandler(fakePinger{err: errors.New("dial tcp: timeout")}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHealth(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["status"] != "degraded" {
		t.Fatalf("status field = %q, want degraded", resp["status"])
	}
}
