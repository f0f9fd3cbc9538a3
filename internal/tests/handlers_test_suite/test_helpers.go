package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	handler "github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var upstream *vigilio.InMemoryUpstream

func init() {
	upstream = vigilio.NewInMemoryUpstream()
	handler.SetUpstream(upstream)
	api.SetRateLimiter(nil)
	api.SetBanner(nil)
}

func resetUpstream() {
	upstream.Reset()
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	decode(t, w, &resp)
	return resp.Error
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("expected status %d, got %d (body %s)", code, w.Code, w.Body.String())
	}
}

// expectNoUpstreamCall fails when validation let a request through.
func expectNoUpstreamCall(t *testing.T) {
	t.Helper()
	if calls := upstream.Calls(); len(calls) != 0 {
		t.Fatalf("expected no upstream call, got %+v", calls)
	}
}

func lastCall(t *testing.T, method string) vigilio.Call {
	t.Helper()
	call, ok := upstream.LastCall()
	if !ok {
		t.Fatalf("expected a %s call, got none", method)
	}
	if call.Method != method {
		t.Fatalf("expected a %s call, got %s", method, call.Method)
	}
	return call
}

func unavailable(msg string) error {
	return status.Error(codes.Unavailable, msg)
}
