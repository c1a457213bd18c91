package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"flightwarehouse-service/internal/domain/entity"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, entity.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, entity.ErrUpstream):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

type listResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}
