package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flightwarehouse-service/internal/domain/entity"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
	Model  string `json:"model"`
}

func (s *Server) handleAsk(w http.ResponseWriter, req *http.Request) {
	var body askRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}

	answer, model, err := s.assistant.Ask(req.Context(), body.Question)
	if err != nil {
		writeError(w, err)
		return
	}

	if user := userFromContext(req.Context()); user != nil {
		s.logger.Info("Assistant question answered", "email", user.Email)
	}
	writeJSON(w, http.StatusOK, askResponse{Answer: answer, Model: model})
}
