package api

import (
	"fmt"
	"net/http"
	"strconv"

	"flightwarehouse-service/internal/domain/entity"
)

// handleIngest triggers one ingest batch. At least one of dep_iata/arr_iata
// is required; limit defaults to 50 and is bounded to 1..100.
func (s *Server) handleIngest(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	depIATA := q.Get("dep_iata")
	arrIATA := q.Get("arr_iata")

	if err := validateIATA(depIATA, "dep_iata"); err != nil {
		writeError(w, err)
		return
	}
	if err := validateIATA(arrIATA, "arr_iata"); err != nil {
		writeError(w, err)
		return
	}

	limit := 50
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, fmt.Errorf("%w: limit must be between 1 and 100", entity.ErrValidation))
			return
		}
		limit = n
	}

	summary, err := s.ingest.Ingest(req.Context(), depIATA, arrIATA, limit)
	if err != nil {
		s.logger.Error("Ingest failed", "dep_iata", depIATA, "arr_iata", arrIATA, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// validateIATA accepts empty or a 3-4 character code.
func validateIATA(code, field string) error {
	if code == "" {
		return nil
	}
	if len(code) < 3 || len(code) > 4 {
		return fmt.Errorf("%w: %s must be 3-4 characters", entity.ErrValidation, field)
	}
	return nil
}
