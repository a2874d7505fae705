package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"oncolearn/internal/errs"
	"oncolearn/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// HandleError maps the error taxonomy onto HTTP statuses. Anything not
// classified is an upstream failure and deliberately reported without detail.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, errs.ErrInvalidCredential):
		WriteError(w, errs.ErrInvalidCredential.Error(), http.StatusUnauthorized)
	case errors.Is(err, errs.ErrUnauthorized):
		WriteError(w, errs.ErrUnauthorized.Error(), http.StatusForbidden)
	case errors.Is(err, errs.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Log.Errorw("upstream failure", "err", err)
		WriteError(w, "internal error", http.StatusInternalServerError)
	}
}
