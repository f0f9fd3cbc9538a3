package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
)

// ListShareHoldersHandler godoc
// @Summary List shareholders (names and IDs)
// @Tags shareholders
// @Produce json
// @Param fund_type query string false "Fund type ID"
// @Success 200 {array} vigilio.ShareHolder
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /shareholders/ [get]
func ListShareHoldersHandler(w http.ResponseWriter, r *http.Request) {
	shareholders, err := upstream.ListShareHolders(r.Context(), r.URL.Query().Get("fund_type"))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, shareholders)
}

// GetShareHolderDetailHandler godoc
// @Summary Shareholder detail with histories and chart data
// @Tags shareholders
// @Produce json
// @Param id path int true "Shareholder ID"
// @Param fund query string false "Fund ticker"
// @Success 200 {object} vigilio.ShareHolderDetail
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /shareholders/{id}/ [get]
func GetShareHolderDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "shareholder")
	if !ok {
		return
	}

	detail, err := upstream.GetShareHolderDetail(r.Context(), id, r.URL.Query().Get("fund"))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, detail)
}

// ShareHoldersSummaryHandler godoc
// @Summary Shareholders summary with aggregated data
// @Tags shareholders
// @Produce json
// @Param date query string false "Jalali date, e.g. 1403/08/15"
// @Param fund_type query string false "Fund type ID"
// @Param search query string false "Search on shareholder name"
// @Param ordering query string false "Ordering field, e.g. -num_funds"
// @Success 200 {array} vigilio.ShareHolderSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /shareholders/summary/ [get]
func ShareHoldersSummaryHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := vigilio.SummaryFilter{
		Date:     q.Get("date"),
		FundType: q.Get("fund_type"),
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
	}

	summary, err := upstream.ShareHoldersSummary(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, summary)
}

// ShareHoldersSummaryExcelHandler godoc
// @Summary Export the shareholders summary as a spreadsheet
// @Tags shareholders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param fund_type query string true "Fund type ID"
// @Param date query string false "Jalali date"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Missing fund_type"
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /shareholders/summary_excel/ [get]
func ShareHoldersSummaryExcelHandler(w http.ResponseWriter, r *http.Request) {
	if !requireParams(w, r, "fund_type") {
		return
	}
	q := r.URL.Query()
	export := vigilio.SummaryExport{FundType: q.Get("fund_type"), Date: q.Get("date")}

	file, err := upstream.ExportShareHoldersSummaryExcel(r.Context(), export)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeExcel(w, fmt.Sprintf("shareholders_summary_%s.xlsx", export.FundType), file.Data)
}

// GetShareHolderForDateHandler godoc
// @Summary Shareholder holdings at a given date
// @Tags shareholders
// @Produce json
// @Param id path int true "Shareholder ID"
// @Param date query string false "Jalali date"
// @Param fund_type query string false "Fund type ID"
// @Success 200 {object} vigilio.ShareHolderForDate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /shareholders/{id}/for_date/ [get]
func GetShareHolderForDateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "shareholder")
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := vigilio.ForDateFilter{
		ShareHolderID: id,
		Date:          q.Get("date"),
		FundType:      q.Get("fund_type"),
	}

	shareholder, err := upstream.GetShareHolderForDate(r.Context(), filter)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, shareholder)
}

// ExportShareHolderExcelHandler godoc
// @Summary Export one shareholder as a spreadsheet
// @Tags shareholders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Shareholder ID"
// @Param fund query string false "Fund ticker"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /shareholders/{id}/excel/ [get]
func ExportShareHolderExcelHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "shareholder")
	if !ok {
		return
	}

	file, err := upstream.ExportShareHolderExcel(r.Context(), id, r.URL.Query().Get("fund"))
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	writeExcel(w, fmt.Sprintf("shareholder_%d.xlsx", id), file.Data)
}
