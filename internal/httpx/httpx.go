// Package httpx holds the HTTP helpers shared by all handler packages:
// the success envelope, API error serialization and request payload
// parsing.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quaggy/edge/internal/apierr"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteValid writes the success envelope, {"status_code": 0,
// "message": "OK"}, merged with any extra payload fields.
func WriteValid(w http.ResponseWriter, extra map[string]any) {
	fields := map[string]any{
		"status_code": 0,
		"message":     "OK",
	}
	for k, v := range extra {
		fields[k] = v
	}
	WriteJSON(w, http.StatusOK, fields)
}

// WriteError serializes an API error. Anything that is not an
// *apierr.APIError is replaced by the generic internal error so
// implementation details never reach the client; callers are expected
// to have logged the original.
//
// Clients that cannot read non-2xx responses may pass the
// no_http_codes query parameter to receive the error body under
// HTTP 200.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierr.Internal()
	}

	status := apiErr.HTTPCode
	if r.URL.Query().Get("no_http_codes") != "" {
		status = http.StatusOK
	}
	WriteJSON(w, status, apiErr)
}

// ParsePayload reduces a request to a flat string-keyed mapping before
// validation: the JSON body for POST, the query string for GET. A
// missing or unreadable body yields an empty map, matching the
// permissive parsing of the original edge.
func ParsePayload(r *http.Request) map[string]any {
	payload := map[string]any{}

	switch r.Method {
	case http.MethodPost, http.MethodPut:
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&payload)
		}
	case http.MethodGet:
		for key, values := range r.URL.Query() {
			if key == "no_http_codes" {
				continue
			}
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
	}
	return payload
}
