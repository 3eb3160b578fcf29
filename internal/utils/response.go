package utils

import (
	"encoding/json"
	"net/http"

	"TASKHIVE_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a structured error response
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// WriteUnauthorized writes a 401 with an empty JSON object. The body is
// deliberately empty so the response never explains why auth failed.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteJSONResponse(w, http.StatusUnauthorized, struct{}{})
}

// DecodeJSONRequest decodes the request body into dst and writes a 400 on
// failure. Returns a non-nil error when the response has been written.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
