package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/pkg/utils"
)

type createFlightRequest struct {
	entity.Flight
}

func (s *Server) handleListFlights(w http.ResponseWriter, req *http.Request) {
	limit, offset := pageParams(req, 50, 500)
	q := req.URL.Query()
	filter := entity.FlightFilter{
		DepIATA:    q.Get("dep_iata"),
		ArrIATA:    q.Get("arr_iata"),
		FlightDate: q.Get("flight_date"),
		Status:     q.Get("status"),
	}

	flights, total, err := s.flights.List(req.Context(), filter, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: flights, Total: total})
}

func (s *Server) handleCreateFlight(w http.ResponseWriter, req *http.Request) {
	var body createFlightRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}

	// Derive the natural key when the caller did not provide one.
	if body.FlightNK == "" {
		body.FlightNK = utils.DeriveFlightKey(body.FlightIATA, body.FlightDate)
	}
	if body.FlightNK == "" {
		writeError(w, fmt.Errorf("%w: flight_iata and flight_date are required", entity.ErrValidation))
		return
	}
	if body.Source == "" {
		body.Source = "manual"
	}

	flight, err := s.flights.Create(req.Context(), &body.Flight)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, flight)
}

func (s *Server) handleGetFlight(w http.ResponseWriter, req *http.Request) {
	flight, err := s.flights.GetByNK(req.Context(), chi.URLParam(req, "flight_nk"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

func (s *Server) handleUpdateFlight(w http.ResponseWriter, req *http.Request) {
	var update entity.FlightUpdate
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}

	flight, err := s.flights.Update(req.Context(), chi.URLParam(req, "flight_nk"), &update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

func (s *Server) handleDeleteFlight(w http.ResponseWriter, req *http.Request) {
	if err := s.flights.Delete(req.Context(), chi.URLParam(req, "flight_nk")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
