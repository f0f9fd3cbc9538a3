package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
)

// ListTotalReturnsHandler godoc
// @Summary Total returns for all funds
// @Tags returns
// @Produce json
// @Param fund_type query string false "Codal Fund or ETF Fund"
// @Param fund_id query int false "Fund ID"
// @Param institute_kind query string false "Institute kind"
// @Param date query string false "Jalali date"
// @Success 200 {array} vigilio.FundReturn
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /total_return/ [get]
func ListTotalReturnsHandler(w http.ResponseWriter, r *http.Request) {
	fundID, ok := queryInt32(w, r, "fund_id")
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := vigilio.TotalReturnFilter{
		FundType:      q.Get("fund_type"),
		FundID:        fundID,
		InstituteKind: q.Get("institute_kind"),
		Date:          q.Get("date"),
	}

	returns, err := upstream.ListTotalReturns(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, returns)
}

// ListEtfReturnsHandler godoc
// @Summary ETF returns
// @Tags returns
// @Produce json
// @Param fund_id query int false "Fund ID"
// @Param institute_kind query string false "Institute kind"
// @Param date query string false "Jalali date"
// @Success 200 {array} vigilio.FundReturn
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /etf_return/ [get]
func ListEtfReturnsHandler(w http.ResponseWriter, r *http.Request) {
	fundID, ok := queryInt32(w, r, "fund_id")
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := vigilio.EtfReturnFilter{
		FundID:        fundID,
		InstituteKind: q.Get("institute_kind"),
		Date:          q.Get("date"),
	}

	returns, err := upstream.ListEtfReturns(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, returns)
}
