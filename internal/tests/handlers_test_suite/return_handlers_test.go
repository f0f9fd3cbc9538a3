package handlers_test_suite

import (
	"net/http"
	"reflect"
	"testing"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestListTotalReturnsHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.TotalReturns = []vigilio.FundReturn{
		{ID: 1, FundID: 11, FundName: "Agah", FundType: "ETF", LastNav: 10250, HasSplit: true, Thirty: 2.1, ThreeSixty: 31.4},
	}

	w := get(r, "/total_return/?fund_type=ETF&fund_id=11&institute_kind=bank&date=1403/08/15")
	expectStatus(t, w, http.StatusOK)

	var got []vigilio.FundReturn
	decode(t, w, &got)
	if !reflect.DeepEqual(got, upstream.TotalReturns) {
		t.Errorf("expected %+v, got %+v", upstream.TotalReturns, got)
	}

	want := vigilio.TotalReturnFilter{FundType: "ETF", FundID: 11, InstituteKind: "bank", Date: "1403/08/15"}
	if call := lastCall(t, "ListTotalReturns"); call.Args != want {
		t.Errorf("expected %+v, got %+v", want, call.Args)
	}
}

func TestListTotalReturnsHandler_NoFilters(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()

	w := get(r, "/total_return")
	expectStatus(t, w, http.StatusOK)

	if call := lastCall(t, "ListTotalReturns"); call.Args != (vigilio.TotalReturnFilter{}) {
		t.Errorf("expected empty filter, got %+v", call.Args)
	}
}

func TestReturnHandlers_InvalidFundID(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()

	for _, path := range []string{"/total_return/?fund_id=abc", "/etf_return/?fund_id=1e3"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			expectStatus(t, w, http.StatusBadRequest)
			if msg := errorMessage(t, w); msg != "fund_id must be an integer" {
				t.Errorf("unexpected message %q", msg)
			}
			expectNoUpstreamCall(t)
		})
	}
}

func TestListEtfReturnsHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.EtfReturns = []vigilio.FundReturn{{ID: 2, FundID: 12, FundName: "Kamand", Bubble: -0.4}}

	w := get(r, "/etf_return/?fund_id=12&date=1403/08/15")
	expectStatus(t, w, http.StatusOK)

	var got []vigilio.FundReturn
	decode(t, w, &got)
	if !reflect.DeepEqual(got, upstream.EtfReturns) {
		t.Errorf("expected %+v, got %+v", upstream.EtfReturns, got)
	}

	want := vigilio.EtfReturnFilter{FundID: 12, Date: "1403/08/15"}
	if call := lastCall(t, "ListEtfReturns"); call.Args != want {
		t.Errorf("expected %+v, got %+v", want, call.Args)
	}
}

func TestListEtfReturnsHandler_InvalidArgument(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.Err = status.Error(codes.InvalidArgument, "unknown institute kind")

	w := get(r, "/etf_return/?institute_kind=nope")
	expectStatus(t, w, http.StatusBadRequest)
	if msg := errorMessage(t, w); msg != "gRPC Error: INVALID_ARGUMENT - unknown institute kind" {
		t.Errorf("unexpected message %q", msg)
	}
}
