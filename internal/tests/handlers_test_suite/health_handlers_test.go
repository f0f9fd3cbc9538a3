package handlers_test_suite

import (
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	handler "github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
)

func TestHealthHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.Err = unavailable("down")

	w := get(r, "/healthz")
	expectStatus(t, w, http.StatusOK)

	var resp handler.StatusResponse
	decode(t, w, &resp)
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	expectNoUpstreamCall(t)
}

func TestReadyHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()

	w := get(r, "/readyz")
	expectStatus(t, w, http.StatusOK)

	var resp handler.StatusResponse
	decode(t, w, &resp)
	if resp.Status != "ready" {
		t.Errorf("expected status ready, got %q", resp.Status)
	}
	lastCall(t, "Ping")
}

func TestReadyHandler_Unavailable(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.Err = unavailable("no route to host")

	w := get(r, "/readyz")
	expectStatus(t, w, http.StatusServiceUnavailable)
	if msg := errorMessage(t, w); msg != "gRPC Error: UNAVAILABLE - no route to host" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestSwaggerDocs(t *testing.T) {
	r := api.NewRouter()

	w := get(r, "/swagger/doc.json")
	expectStatus(t, w, http.StatusOK)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	decode(t, w, &doc)
	for _, path := range []string{"/fund-types/", "/shareholders/summary_excel/", "/watchlist/{id}/prices/"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("swagger document is missing %s", path)
		}
	}
}
