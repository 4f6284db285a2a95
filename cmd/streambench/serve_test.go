package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/kestrelhpc/stream"
)

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e := newServer()
	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestInfoEndpoint(t *testing.T) {
	e := newServer()
	rec := doJSON(t, e, http.MethodGet, "/info", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var info map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s, _ := info["backend"].(string); s == "" {
		t.Error("info missing backend")
	}
}

func TestRunEndpoint(t *testing.T) {
	e := newServer()
	body := `{"size": 65536, "num_warm_up": 0, "num_loops": 1, "precisions": ["float"]}`
	rec := doJSON(t, e, http.MethodPost, "/run", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body=%s", rec.Code, rec.Body.String())
	}

	var res stream.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Kernels) != 4 {
		t.Fatalf("got %d kernel results, want 4", len(res.Kernels))
	}
	if res.ID == "" {
		t.Error("result has no ID")
	}
}

func TestRunEndpointBadBody(t *testing.T) {
	e := newServer()
	rec := doJSON(t, e, http.MethodPost, "/run", `{"size": "not a number"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestParsePrecision(t *testing.T) {
	if _, err := parsePrecision("half"); err == nil {
		t.Error("expected error for unsupported precision")
	}
	ps, err := parsePrecision("both")
	if err != nil {
		t.Fatalf("parsePrecision(both): %v", err)
	}
	if len(ps) != 2 {
		t.Errorf("both -> %v", ps)
	}
}
