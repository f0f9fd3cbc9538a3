package handlers_integrated_test_suite

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGateway_FundTypes(t *testing.T) {
	r, s := setupGateway(t)
	s.reply("GetFundTypes", `{"fund_types":[{"id":1,"name":"ETF"},{"id":4,"name":"Fixed income"}]}`)

	w := get(r, "/fund-types/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got []vigilio.FundType
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(got) != 2 || got[1].ID != 4 || got[1].Name != "Fixed income" {
		t.Errorf("unexpected fund types %+v", got)
	}
}

func TestGateway_EmptyListIsArray(t *testing.T) {
	r, _ := setupGateway(t)

	w := get(r, "/shareholders/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected an empty JSON array, got %s", body)
	}
}

func TestGateway_SummaryFiltersReachUpstream(t *testing.T) {
	r, s := setupGateway(t)

	w := get(r, "/shareholders/summary/?fund_type=2&search=melli&ordering=-total_value")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req, _ := s.request("ShareHoldersSummary")
	for _, want := range []string{`"fund_type":"2"`, `"search":"melli"`, `"ordering":"-total_value"`} {
		if !strings.Contains(strings.ReplaceAll(req, " ", ""), want) {
			t.Errorf("upstream request %s is missing %s", req, want)
		}
	}
}

func TestGateway_SpreadsheetExport(t *testing.T) {
	r, s := setupGateway(t)
	// "UEsDBA==" is base64 for the zip magic PK\x03\x04.
	s.reply("ExportShareHolderExcel", `{"excel_file":"UEsDBA==","file_name":"holder.xlsx"}`)

	w := get(r, "/shareholders/5/excel/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != handler.ExcelContentType {
		t.Errorf("unexpected content type %q", ct)
	}
	if w.Body.String() != "PK\x03\x04" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestGateway_RequestIDMetadata(t *testing.T) {
	r, s := setupGateway(t)

	req := newRequest(t, "/fund-types/")
	req.Header.Set("X-Request-ID", "trace-77")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	_, md := s.request("GetFundTypes")
	if got := md.Get(vigilio.RequestIDHeader); len(got) != 1 || got[0] != "trace-77" {
		t.Errorf("expected request id metadata, got %v", got)
	}
}

func TestGateway_NonASCIIRequestIDReplaced(t *testing.T) {
	r, s := setupGateway(t)

	req := newRequest(t, "/fund-types/")
	req.Header.Set("X-Request-ID", "caf\u00e9")
	w := serve(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	id := w.Header().Get("X-Request-ID")
	if id == "" || id == "caf\u00e9" {
		t.Fatalf("expected a generated request id, got %q", id)
	}
	_, md := s.request("GetFundTypes")
	if got := md.Get(vigilio.RequestIDHeader); len(got) != 1 || got[0] != id {
		t.Errorf("expected metadata %q, got %v", id, got)
	}
}

func TestGateway_UpstreamStatusMapping(t *testing.T) {
	r, s := setupGateway(t)
	s.fail("GetShareHolderForDate", status.Error(codes.InvalidArgument, "invalid date format"))
	s.fail("GetNavTrend", status.Error(codes.NotFound, "fund not watched"))

	tests := []struct {
		path       string
		expectCode int
		expectMsg  string
	}{
		{"/shareholders/3/for_date/?date=bad", http.StatusBadRequest, "gRPC Error: INVALID_ARGUMENT - invalid date format"},
		{"/watchlist/nav_trend/?fund_id=9", http.StatusInternalServerError, "gRPC Error: NOT_FOUND - fund not watched"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, w.Code)
			}
			var resp handler.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Error != tt.expectMsg {
				t.Errorf("expected %q, got %q", tt.expectMsg, resp.Error)
			}
		})
	}
}

func TestGateway_UpstreamUnreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	lis.Close()

	r := dialGateway(t, addr)

	for _, path := range []string{"/fund-types/", "/readyz"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
			}
			var resp handler.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if !strings.HasPrefix(resp.Error, "gRPC Error: UNAVAILABLE - ") {
				t.Errorf("unexpected message %q", resp.Error)
			}
		})
	}
}
