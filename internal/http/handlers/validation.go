package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// requireParams reports a 400 naming every required parameter when one of them is absent.
func requireParams(w http.ResponseWriter, r *http.Request, names ...string) bool {
	q := r.URL.Query()
	for _, name := range names {
		if strings.TrimSpace(q.Get(name)) == "" {
			WriteError(w, http.StatusBadRequest, requiredMessage(names))
			return false
		}
	}
	return true
}

func requiredMessage(names []string) string {
	switch len(names) {
	case 1:
		return names[0] + " query parameter is required"
	case 2:
		return names[0] + " and " + names[1] + " query parameters are required"
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1] + " query parameters are required"
	}
}

// pathID parses the {id} URL parameter as a 32-bit integer.
func pathID(w http.ResponseWriter, r *http.Request, what string) (int32, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid "+what+" ID")
		return 0, false
	}
	return int32(id), true
}

// queryInt32 parses an optional integer query parameter; absent means zero.
func queryInt32(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		WriteError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return int32(v), true
}
