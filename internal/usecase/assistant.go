package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/pkg/logger"
)

// assistantContextRows is how many recent fact rows ground each answer.
const assistantContextRows = 50

// AssistantService answers read-only questions over the fact table by
// sampling the most recent flights as context for a hosted language model.
type AssistantService struct {
	flights repository.FlightRepository
	model   repository.AssistantModel
	logger  logger.Logger
}

// NewAssistantService creates a new assistant service
func NewAssistantService(
	flights repository.FlightRepository,
	model repository.AssistantModel,
	logger logger.Logger,
) *AssistantService {
	return &AssistantService{
		flights: flights,
		model:   model,
		logger:  logger,
	}
}

// Ask answers a question grounded on recent flight data. Returns the answer
// and the model name that produced it.
func (s *AssistantService) Ask(ctx context.Context, question string) (string, string, error) {
	if question == "" {
		return "", "", fmt.Errorf("%w: question is required", entity.ErrValidation)
	}

	flights, err := s.flights.ListRecent(ctx, assistantContextRows)
	if err != nil {
		return "", "", fmt.Errorf("failed to load flight context: %w", err)
	}

	prompt, err := buildPrompt(question, flights)
	if err != nil {
		return "", "", err
	}

	answer, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return "", "", err
	}

	s.logger.Info("Assistant answered", "model", s.model.ModelName(), "context_rows", len(flights))
	return answer, s.model.ModelName(), nil
}

func buildPrompt(question string, flights []entity.Flight) (string, error) {
	blob, err := json.Marshal(flights)
	if err != nil {
		return "", fmt.Errorf("failed to marshal flight context: %w", err)
	}
	return fmt.Sprintf(
		"You are a data assistant for an airport operations dashboard. "+
			"Answer ONLY using the provided flight data. If the data is insufficient, say so.\n\n"+
			"Question: %s\n\n"+
			"Flight data (last %d rows, most recent first, JSON):\n%s",
		question, assistantContextRows, blob), nil
}
