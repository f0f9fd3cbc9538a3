package http

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
)

const (
	RequestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

// RequestID keeps the caller's X-Request-ID or assigns a new one, echoes it
// back and makes it available to the upstream client. Ids that gRPC metadata
// cannot carry are replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(vigilio.WithRequestID(r.Context(), id)))
	})
}

// validRequestID accepts non-empty printable ASCII up to maxRequestIDLen bytes.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("%s %s %d %dB %s id=%s", r.Method, r.URL.RequestURI(), ww.Status(), ww.BytesWritten(),
			time.Since(start).Round(time.Microsecond), vigilio.RequestIDFrom(r.Context()))
	})
}

// RealIP applies chi's RealIP only when proxy headers are trusted, so a
// client cannot pick its own rate-limit key.
func RealIP(next http.Handler) http.Handler {
	withProxy := middleware.RealIP(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if trustProxyHeaders {
			withProxy.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit rejects banned clients with 403 and clients over their budget
// with 429. Each 429 counts as a strike towards a ban.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		if banner != nil && banner.IsBanned(r.Context(), ip) {
			handlers.WriteError(w, http.StatusForbidden, "client temporarily banned")
			return
		}

		if !limiter.Allow(ip) {
			if banner != nil {
				banner.RecordStrike(r.Context(), ip, r.URL.Path)
			}
			handlers.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
