package handlers_test_suite

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGetFundTypesHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.FundTypes = []vigilio.FundType{{ID: 1, Name: "ETF"}, {ID: 2, Name: "Leveraged"}}

	for _, path := range []string{"/fund-types/", "/fund-types"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			expectStatus(t, w, http.StatusOK)

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %q", ct)
			}
			var got []vigilio.FundType
			decode(t, w, &got)
			if !reflect.DeepEqual(got, upstream.FundTypes) {
				t.Errorf("expected %+v, got %+v", upstream.FundTypes, got)
			}
		})
	}
}

func TestGetFundTypesHandler_Unavailable(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.Err = unavailable("failed to connect to all addresses")

	w := get(r, "/fund-types/")
	expectStatus(t, w, http.StatusServiceUnavailable)

	want := "gRPC Error: UNAVAILABLE - failed to connect to all addresses"
	if msg := errorMessage(t, w); msg != want {
		t.Errorf("expected %q, got %q", want, msg)
	}
}

func TestGetFundTypesHandler_UpstreamErrors(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"invalid argument", status.Error(codes.InvalidArgument, "bad date"), http.StatusBadRequest, "gRPC Error: INVALID_ARGUMENT - bad date"},
		{"not found", status.Error(codes.NotFound, "no such fund"), http.StatusInternalServerError, "gRPC Error: NOT_FOUND - no such fund"},
		{"internal", status.Error(codes.Internal, "boom"), http.StatusInternalServerError, "gRPC Error: INTERNAL - boom"},
		{"deadline", status.Error(codes.DeadlineExceeded, "too slow"), http.StatusInternalServerError, "gRPC Error: DEADLINE_EXCEEDED - too slow"},
		{"cancelled", status.Error(codes.Canceled, "gone"), http.StatusInternalServerError, "gRPC Error: CANCELLED - gone"},
		{"plain error", errors.New("decoder failed"), http.StatusInternalServerError, "decoder failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream.Err = tt.err

			w := get(r, "/fund-types/")
			expectStatus(t, w, tt.expectCode)
			if msg := errorMessage(t, w); msg != tt.expectMsg {
				t.Errorf("expected %q, got %q", tt.expectMsg, msg)
			}
		})
	}
}
