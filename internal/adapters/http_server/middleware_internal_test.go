package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func TestAccess_LogsRouteAndAnnotations(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	r := chi.NewRouter()
	r.Use(Access(l))
	r.Get("/chat/history/{userId}", func(w http.ResponseWriter, r *http.Request) {
		annotate(r.Context(), func(a *annotations) {
			a.userID = "u-1"
			a.intent = "greeting"
		})
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/chat/history/u-1", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line not JSON: %v (%q)", err, buf.String())
	}
	want := map[string]any{
		"message": "http_request",
		"route":   "/chat/history/{userId}",
		"status":  float64(http.StatusTeapot),
		"remote":  "10.0.0.7",
		"user_id": "u-1",
		"intent":  "greeting",
	}
	for k, v := range want {
		if line[k] != v {
			t.Errorf("%s = %v, want %v", k, line[k], v)
		}
	}
}

func TestAccess_UnmatchedRouteAndDefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(Access(zerolog.New(&buf)))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	var line map[string]any
	_ = json.Unmarshal(buf.Bytes(), &line)
	if line["status"] != float64(200) {
		t.Fatalf("status = %v", line["status"])
	}
	if _, ok := line["user_id"]; ok {
		t.Fatalf("anonymous request logged a user_id")
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	_ = json.Unmarshal(buf.Bytes(), &line)
	if line["route"] != "unmatched" || line["status"] != float64(404) {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	if got := clientIP(req); got != "192.0.2.1" {
		t.Fatalf("got %q", got)
	}
	req.RemoteAddr = "192.0.2.9"
	if got := clientIP(req); got != "192.0.2.9" {
		t.Fatalf("got %q", got)
	}
}
