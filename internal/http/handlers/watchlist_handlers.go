package handlers

import (
	"net/http"
)

// fundIDParam reads the mandatory integer fund_id query parameter.
func fundIDParam(w http.ResponseWriter, r *http.Request) (int32, bool) {
	if !requireParams(w, r, "fund_id") {
		return 0, false
	}
	return queryInt32(w, r, "fund_id")
}

// GetNavTrendHandler godoc
// @Summary NAV trend of a watched fund
// @Tags watchlist
// @Produce json
// @Param fund_id query int true "Fund ID"
// @Success 200 {object} vigilio.NavTrend
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /watchlist/nav_trend/ [get]
func GetNavTrendHandler(w http.ResponseWriter, r *http.Request) {
	fundID, ok := fundIDParam(w, r)
	if !ok {
		return
	}

	trend, err := upstream.GetNavTrend(r.Context(), fundID)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, trend)
}

// GetSplitsHandler godoc
// @Summary Unit splits of a watched fund
// @Tags watchlist
// @Produce json
// @Param fund_id query int true "Fund ID"
// @Success 200 {array} vigilio.Split
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /watchlist/splits/ [get]
func GetSplitsHandler(w http.ResponseWriter, r *http.Request) {
	fundID, ok := fundIDParam(w, r)
	if !ok {
		return
	}

	splits, err := upstream.GetSplits(r.Context(), fundID)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, splits)
}

// GetProfitsHandler godoc
// @Summary Profit distributions of a watched fund
// @Tags watchlist
// @Produce json
// @Param fund_id query int true "Fund ID"
// @Success 200 {array} vigilio.Profit
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /watchlist/profits/ [get]
func GetProfitsHandler(w http.ResponseWriter, r *http.Request) {
	fundID, ok := fundIDParam(w, r)
	if !ok {
		return
	}

	profits, err := upstream.GetProfits(r.Context(), fundID)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, profits)
}

// GetPricesHandler godoc
// @Summary Price history of a watched fund
// @Tags watchlist
// @Produce json
// @Param id path int true "Fund ID"
// @Success 200 {array} vigilio.Price
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /watchlist/{id}/prices/ [get]
func GetPricesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "fund")
	if !ok {
		return
	}

	prices, err := upstream.GetPrices(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, prices)
}
