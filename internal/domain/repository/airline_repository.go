package repository

import (
	"context"

	"flightwarehouse-service/internal/domain/entity"
)

// AirlineRepository defines the interface for airline dimension operations
type AirlineRepository interface {
	Create(ctx context.Context, airline *entity.Airline) (*entity.Airline, error)
	GetByIATA(ctx context.Context, iata string) (*entity.Airline, error)
	List(ctx context.Context, limit, offset int) ([]entity.Airline, int64, error)
	Update(ctx context.Context, iata string, update *entity.AirlineUpdate) (*entity.Airline, error)
	Delete(ctx context.Context, iata string) error

	// DistinctByAirport lists the airlines seen on flights departing from or
	// arriving at the given airport, joined against the fact table.
	DistinctByAirport(ctx context.Context, airportIATA string) ([]entity.AirlineAtAirport, error)
}
