package repository

import (
	"context"

	"flightwarehouse-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport dimension operations
type AirportRepository interface {
	Create(ctx context.Context, airport *entity.Airport) (*entity.Airport, error)
	GetByIATA(ctx context.Context, iata string) (*entity.Airport, error)
	List(ctx context.Context, limit, offset int) ([]entity.Airport, int64, error)
	Update(ctx context.Context, iata string, update *entity.AirportUpdate) (*entity.Airport, error)
	Delete(ctx context.Context, iata string) error
}
