package handler

import (
	"encoding/json"
	"net/http"

	"summary-pdf-service/pkg/errors"
)

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// failureResponse is the JSON shape of every failed request. Callers always
// receive an explicit success boolean, never a raw stack trace.
type failureResponse struct {
	Success bool             `json:"success"`
	Error   *errors.AppError `json:"error"`
}

// writeFailure maps a pipeline error onto the failure payload, with the
// status code taken from the error class.
func writeFailure(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("unexpected error", err)
	}
	writeJSON(w, appErr.StatusCode, failureResponse{Success: false, Error: appErr})
}
