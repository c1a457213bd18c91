package repository

import (
	"context"

	"flightwarehouse-service/internal/domain/entity"
)

// FlightProvider defines the interface to the upstream flight-data provider.
// At least one of depIATA/arrIATA must be set; limit is 1..100. The call is
// bounded by a client timeout and is never retried here.
type FlightProvider interface {
	FetchFlights(ctx context.Context, depIATA, arrIATA string, limit int) ([]entity.ProviderFlightRecord, error)
}
