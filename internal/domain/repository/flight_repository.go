package repository

import (
	"context"

	"flightwarehouse-service/internal/domain/entity"
)

// FlightRepository defines the interface for fact-table flight operations
type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
	GetByNK(ctx context.Context, flightNK string) (*entity.Flight, error)
	List(ctx context.Context, filter entity.FlightFilter, limit, offset int) ([]entity.Flight, int64, error)
	Update(ctx context.Context, flightNK string, update *entity.FlightUpdate) (*entity.Flight, error)
	Delete(ctx context.Context, flightNK string) error

	// ListRecent returns the most recently seen flights, newest first. Used
	// as grounding context by the assistant.
	ListRecent(ctx context.Context, limit int) ([]entity.Flight, error)
}
