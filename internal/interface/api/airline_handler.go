package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightwarehouse-service/internal/domain/entity"
)

type createAirlineRequest struct {
	AirlineIATA string  `json:"airline_iata"`
	ICAO        *string `json:"icao"`
	AirlineName *string `json:"airline_name"`
}

func (s *Server) handleListAirlines(w http.ResponseWriter, req *http.Request) {
	limit, offset := pageParams(req, 50, 500)
	airlines, total, err := s.airlines.List(req.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: airlines, Total: total})
}

func (s *Server) handleCreateAirline(w http.ResponseWriter, req *http.Request) {
	var body createAirlineRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}
	if body.AirlineIATA == "" {
		writeError(w, fmt.Errorf("%w: airline_iata is required", entity.ErrValidation))
		return
	}

	airline, err := s.airlines.Create(req.Context(), &entity.Airline{
		AirlineIATA: body.AirlineIATA,
		ICAO:        body.ICAO,
		AirlineName: body.AirlineName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, airline)
}

func (s *Server) handleGetAirline(w http.ResponseWriter, req *http.Request) {
	airline, err := s.airlines.GetByIATA(req.Context(), chi.URLParam(req, "iata"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airline)
}

func (s *Server) handleUpdateAirline(w http.ResponseWriter, req *http.Request) {
	var update entity.AirlineUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}

	airline, err := s.airlines.Update(req.Context(), chi.URLParam(req, "iata"), &update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airline)
}

func (s *Server) handleDeleteAirline(w http.ResponseWriter, req *http.Request) {
	if err := s.airlines.Delete(req.Context(), chi.URLParam(req, "iata")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
