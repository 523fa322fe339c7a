package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as JSON with the given status code and no-cache headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, v, false)
}

// WriteJSONIndent is WriteJSON with indented output.
func WriteJSONIndent(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, v, true)
}

func writeJSON(w http.ResponseWriter, code int, v any, indent bool) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "    ")
	}
	_ = enc.Encode(v)
}

// NoCache marks the response as non-cacheable. Client responses can carry
// credentials.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
