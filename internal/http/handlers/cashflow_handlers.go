package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
)

// ListCashFlowsHandler godoc
// @Summary Cash flow summary for all funds
// @Tags cashflow
// @Produce json
// @Param start_date query string true "Start date"
// @Param end_date query string true "End date"
// @Param institute_kind query string false "Institute kind"
// @Success 200 {array} vigilio.CashFlow
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cashflow/ [get]
func ListCashFlowsHandler(w http.ResponseWriter, r *http.Request) {
	if !requireParams(w, r, "start_date", "end_date") {
		return
	}
	q := r.URL.Query()
	filter := vigilio.CashFlowFilter{
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
		InstituteKind: q.Get("institute_kind"),
	}

	flows, err := upstream.ListCashFlows(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, flows)
}

// GetCashFlowDetailHandler godoc
// @Summary Daily cash flow of one fund
// @Tags cashflow
// @Produce json
// @Param id path int true "Fund ID"
// @Param start_date query string true "Start date"
// @Param end_date query string true "End date"
// @Param fund_type query string true "ETF or CODAL"
// @Param institute_kind query string false "Institute kind"
// @Success 200 {array} vigilio.CashFlowDetail
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cashflow/{id}/detail/ [get]
func GetCashFlowDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fund")
	if !ok {
		return
	}
	if !requireParams(w, r, "start_date", "end_date", "fund_type") {
		return
	}
	q := r.URL.Query()
	filter := vigilio.CashFlowDetailFilter{
		FundID:        id,
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
		FundType:      q.Get("fund_type"),
		InstituteKind: q.Get("institute_kind"),
	}

	detail, err := upstream.GetCashFlowDetail(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, detail)
}
