package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/dto"
	"quora-backend/backend/global"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto the wire. Anything outside the
// taxonomy is an infrastructure failure and surfaces as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		apperr.Write(w, ae)
		return
	}
	global.Logger.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Code: "GEN-001", Message: "Service unavailable"})
}
