package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"
)

const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// respond writes a 200 JSON payload, falling back to a 500 when it cannot be encoded.
func respond(w http.ResponseWriter, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to encode response: %v", err)
		WriteError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// WriteError writes the {"error": msg} body used by every failure response.
func WriteError(w http.ResponseWriter, status int, msg string) {
	if err := writeJSON(w, status, ErrorResponse{Error: msg}); err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}

// writeExcel streams spreadsheet bytes as an attachment.
func writeExcel(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", ExcelContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("failed to write spreadsheet: %v", err)
	}
}
