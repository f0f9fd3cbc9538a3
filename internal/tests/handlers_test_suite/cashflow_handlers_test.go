package handlers_test_suite

import (
	"net/http"
	"reflect"
	"testing"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
)

func TestListCashFlowsHandler_MissingParams(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()

	for _, path := range []string{
		"/cashflow/",
		"/cashflow/?start_date=1403/01/01",
		"/cashflow/?end_date=1403/06/31",
	} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			expectStatus(t, w, http.StatusBadRequest)
			if msg := errorMessage(t, w); msg != "start_date and end_date query parameters are required" {
				t.Errorf("unexpected message %q", msg)
			}
			expectNoUpstreamCall(t)
		})
	}
}

func TestListCashFlowsHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.CashFlows = []vigilio.CashFlow{
		{CashFlow: 120, InFlow: 200, OutFlow: 80, FundName: "Agah", FundType: "ETF", FundID: 11, Symbol: "AGAS", InstituteKind: "bank"},
	}

	w := get(r, "/cashflow/?start_date=1403/01/01&end_date=1403/06/31&institute_kind=bank")
	expectStatus(t, w, http.StatusOK)

	var got []vigilio.CashFlow
	decode(t, w, &got)
	if !reflect.DeepEqual(got, upstream.CashFlows) {
		t.Errorf("expected %+v, got %+v", upstream.CashFlows, got)
	}

	want := vigilio.CashFlowFilter{StartDate: "1403/01/01", EndDate: "1403/06/31", InstituteKind: "bank"}
	if call := lastCall(t, "ListCashFlows"); call.Args != want {
		t.Errorf("expected %+v, got %+v", want, call.Args)
	}
}

func TestGetCashFlowDetailHandler(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()
	upstream.CashFlowDetails = []vigilio.CashFlowDetail{{CashFlow: 5, FundID: 11, Date: "1403/02/01"}}

	w := get(r, "/cashflow/11/detail/?start_date=1403/01/01&end_date=1403/06/31&fund_type=ETF")
	expectStatus(t, w, http.StatusOK)

	var got []vigilio.CashFlowDetail
	decode(t, w, &got)
	if !reflect.DeepEqual(got, upstream.CashFlowDetails) {
		t.Errorf("expected %+v, got %+v", upstream.CashFlowDetails, got)
	}

	want := vigilio.CashFlowDetailFilter{FundID: 11, StartDate: "1403/01/01", EndDate: "1403/06/31", FundType: "ETF"}
	if call := lastCall(t, "GetCashFlowDetail"); call.Args != want {
		t.Errorf("expected %+v, got %+v", want, call.Args)
	}
}

func TestGetCashFlowDetailHandler_Validation(t *testing.T) {
	t.Cleanup(resetUpstream)
	r := api.NewRouter()

	tests := []struct {
		name      string
		path      string
		expectMsg string
	}{
		{"missing fund_type", "/cashflow/11/detail/?start_date=a&end_date=b", "start_date, end_date, and fund_type query parameters are required"},
		{"missing everything", "/cashflow/11/detail/", "start_date, end_date, and fund_type query parameters are required"},
		{"bad id", "/cashflow/x/detail/?start_date=a&end_date=b&fund_type=ETF", "invalid fund ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path)
			expectStatus(t, w, http.StatusBadRequest)
			if msg := errorMessage(t, w); msg != tt.expectMsg {
				t.Errorf("expected %q, got %q", tt.expectMsg, msg)
			}
			expectNoUpstreamCall(t)
		})
	}
}
