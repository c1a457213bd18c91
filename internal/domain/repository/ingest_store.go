package repository

import (
	"context"

	"flightwarehouse-service/internal/domain/entity"
)

// IngestTx exposes the warehouse writes available inside one ingest batch
// transaction. Each upsert must be a single atomic conflict-resolving
// statement so that concurrent batches racing on the same key stay safe.
type IngestTx interface {
	ArchiveRaw(ctx context.Context, record *entity.RawRecord) error
	UpsertFlight(ctx context.Context, flight *entity.Flight) error
	UpsertAirport(ctx context.Context, airport *entity.Airport) error
	UpsertAirline(ctx context.Context, airline *entity.Airline) error
}

// IngestStore scopes one batch to one transaction: fn runs against an open
// transaction that is committed when fn returns nil and rolled back when fn
// returns an error or panics. No partial batch state ever becomes visible.
type IngestStore interface {
	RunBatch(ctx context.Context, fn func(tx IngestTx) error) error
}
