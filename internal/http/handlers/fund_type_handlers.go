package handlers

import (
	"net/http"
)

// GetFundTypesHandler godoc
// @Summary List fund types
// @Tags fund-types
// @Produce json
// @Success 200 {array} vigilio.FundType
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Upstream unavailable"
// @Router /fund-types/ [get]
func GetFundTypesHandler(w http.ResponseWriter, r *http.Request) {
	fundTypes, err := upstream.GetFundTypes(r.Context())
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, fundTypes)
}
