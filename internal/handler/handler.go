package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
)

// DashboardPath is where form-mode admin mutations redirect after completion.
const DashboardPath = "/dashboard"

// respondJSON writes v as a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes a machine-readable error code as JSON.
func respondError(w http.ResponseWriter, status int, code string) {
	respondJSON(w, status, map[string]string{"error": code})
}

// wantsJSON reports whether the caller expects a data payload rather than a
// redirect: either an XHR marker or an Accept header naming JSON.
func wantsJSON(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// respondOrRedirect answers a successful mutating admin operation. AJAX
// callers get the JSON payload; plain form posts are sent back to the
// dashboard. Every mutating handler goes through here so the dual response
// mode stays uniform.
func respondOrRedirect(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsJSON(r) {
		respondJSON(w, status, v)
		return
	}
	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

// parseFields reads request fields from a JSON object body, a urlencoded
// form, or a multipart form, so handlers accept both AJAX and browser-form
// submissions.
func parseFields(r *http.Request) (map[string]string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case ct == "application/json":
		fields := map[string]string{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	case strings.HasPrefix(ct, "multipart/"):
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return nil, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}
	fields := map[string]string{}
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields, nil
}

// CORS allows the credentialed frontend origin on all routes.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", frontendURL)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
