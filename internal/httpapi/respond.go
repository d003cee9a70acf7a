package httpapi

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform response body shape: a status field of
// "success" or "error" plus endpoint-specific fields.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeSuccess merges fields into a success envelope. Failures never use
// HTTP status codes (one account-deletion path excepted); clients branch
// on the status field.
func writeSuccess(w http.ResponseWriter, fields envelope) {
	body := envelope{"status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusOK, envelope{
		"status":  "error",
		"message": err.Error(),
	})
}
