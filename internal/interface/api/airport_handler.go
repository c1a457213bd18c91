package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightwarehouse-service/internal/domain/entity"
)

type createAirportRequest struct {
	AirportIATA string  `json:"airport_iata"`
	AirportName *string `json:"airport_name"`
	Timezone    *string `json:"timezone"`
	ICAO        *string `json:"icao"`
}

func (s *Server) handleListAirports(w http.ResponseWriter, req *http.Request) {
	limit, offset := pageParams(req, 50, 500)
	airports, total, err := s.airports.List(req.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: airports, Total: total})
}

func (s *Server) handleCreateAirport(w http.ResponseWriter, req *http.Request) {
	var body createAirportRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}
	if err := validateIATA(body.AirportIATA, "airport_iata"); err != nil {
		writeError(w, err)
		return
	}
	if body.AirportIATA == "" {
		writeError(w, fmt.Errorf("%w: airport_iata is required", entity.ErrValidation))
		return
	}

	airport, err := s.airports.Create(req.Context(), &entity.Airport{
		AirportIATA: body.AirportIATA,
		AirportName: body.AirportName,
		Timezone:    body.Timezone,
		ICAO:        body.ICAO,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, airport)
}

func (s *Server) handleGetAirport(w http.ResponseWriter, req *http.Request) {
	airport, err := s.airports.GetByIATA(req.Context(), chi.URLParam(req, "iata"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airport)
}

func (s *Server) handleUpdateAirport(w http.ResponseWriter, req *http.Request) {
	var update entity.AirportUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}

	airport, err := s.airports.Update(req.Context(), chi.URLParam(req, "iata"), &update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, airport)
}

func (s *Server) handleDeleteAirport(w http.ResponseWriter, req *http.Request) {
	if err := s.airports.Delete(req.Context(), chi.URLParam(req, "iata")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAirlinesByAirport(w http.ResponseWriter, req *http.Request) {
	airlines, err := s.airlines.DistinctByAirport(req.Context(), chi.URLParam(req, "iata"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: airlines, Total: int64(len(airlines))})
}
