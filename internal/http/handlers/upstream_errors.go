package handlers

import (
	"fmt"
	"log"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Upper-case status names, as grpc reports them in other languages.
var codeNames = map[codes.Code]string{
	codes.OK:                 "OK",
	codes.Canceled:           "CANCELLED",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Aborted:            "ABORTED",
	codes.OutOfRange:         "OUT_OF_RANGE",
	codes.Unimplemented:      "UNIMPLEMENTED",
	codes.Internal:           "INTERNAL",
	codes.Unavailable:        "UNAVAILABLE",
	codes.DataLoss:           "DATA_LOSS",
	codes.Unauthenticated:    "UNAUTHENTICATED",
}

func codeName(c codes.Code) string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return c.String()
}

// UpstreamError maps an upstream failure to an HTTP status and message.
// Unavailable is 503, InvalidArgument is 400, anything else is 500.
func UpstreamError(err error) (int, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, err.Error()
	}

	msg := fmt.Sprintf("gRPC Error: %s - %s", codeName(st.Code()), st.Message())
	switch st.Code() {
	case codes.Unavailable:
		return http.StatusServiceUnavailable, msg
	case codes.InvalidArgument:
		return http.StatusBadRequest, msg
	default:
		return http.StatusInternalServerError, msg
	}
}

func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := UpstreamError(err)
	log.Printf("upstream call for %s %s failed (%d): %s", r.Method, r.URL.Path, code, msg)
	WriteError(w, code, msg)
}
