package handlers

import (
	"net/http"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, StatusResponse{Status: "ok"})
}

// ReadyHandler godoc
// @Summary Readiness probe, pings the upstream service
// @Tags ops
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /readyz [get]
func ReadyHandler(w http.ResponseWriter, r *http.Request) {
	if err := upstream.Ping(r.Context()); err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respond(w, StatusResponse{Status: "ready"})
}
